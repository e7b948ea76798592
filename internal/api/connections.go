package api

import (
	"context"
	"encoding/json"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Connections fetches the current user's matches.
func (c *Client) Connections(ctx context.Context) ([]models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/user/connections")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var wrapper struct {
		Data []models.User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

// Unfriend removes a connection.
func (c *Client) Unfriend(ctx context.Context, userID string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/user/connections/" + userID)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}
