package api

import (
	"context"
	"encoding/json"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// ChatHistory fetches the persisted messages for a chat with the given
// counterpart.
func (c *Client) ChatHistory(ctx context.Context, targetUserID string) ([]models.Message, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/chat/" + targetUserID)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var wrapper struct {
		Messages []models.Message `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Messages, nil
}
