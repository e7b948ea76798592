package api

import (
	"context"
	"encoding/json"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Feed fetches the next batch of candidates to swipe on.
func (c *Client) Feed(ctx context.Context) ([]models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/feed")
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
