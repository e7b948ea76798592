package api

import (
	"context"
	"encoding/json"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// SignupInput is the payload for account creation.
type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	EmailID   string `json:"emailId"`
	Password  string `json:"password"`
}

// Login authenticates and returns the logged-in user. The server sets the
// session token cookie on the shared jar.
func (c *Client) Login(ctx context.Context, emailID, password string) (*models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"emailId": emailID, "password": password}).
		Post("/login")
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

// Signup registers a new account and returns the created user.
func (c *Client) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		Post("/signup")
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
	if wrapper.Data.ID == "" {
		var user models.User
		if err := json.Unmarshal(resp.Body(), &user); err != nil {
			return nil, err
		}
		return &user, nil
	}
	return &wrapper.Data, nil
}

// Logout invalidates the server session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/logout")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}
