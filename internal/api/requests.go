package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Swipe decisions and review verdicts accepted by the backend.
const (
	StatusInterested = "interested"
	StatusIgnored    = "ignored"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
)

// ReceivedRequests fetches pending inbound connection requests.
func (c *Client) ReceivedRequests(ctx context.Context) ([]models.ConnectionRequest, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/user/requests/received")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	var wrapper struct {
		Data []models.ConnectionRequest `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

// SendRequest records a swipe decision (interested or ignored) on a feed
// candidate.
func (c *Client) SendRequest(ctx context.Context, status, userID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/request/send/%s/%s", status, userID))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}

// ReviewRequest accepts or rejects a pending inbound request.
func (c *Client) ReviewRequest(ctx context.Context, status, requestID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/request/review/%s/%s", status, requestID))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}
