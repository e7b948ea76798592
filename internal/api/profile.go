package api

import (
	"context"
	"encoding/json"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Profile fetches the logged-in user's own profile. Returns
// ErrUnauthorized when there is no valid session.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/profile/view")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileByID fetches another user's profile.
func (c *Client) ProfileByID(ctx context.Context, userID string) (*models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/profile/view/" + userID)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EditProfile patches the given profile fields and returns the updated
// user.
func (c *Client) EditProfile(ctx context.Context, fields map[string]any) (*models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fields).
		Patch("/profile/edit")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var wrapper struct {
		Data models.User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}
