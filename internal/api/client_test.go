package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushAgarwal15/devtinder-cli/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.ServerConfig{BaseURL: srv.URL, RequestTimeout: 5})
}

func TestLoginStoresSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@dev.io", body["emailId"])

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "jwt-abc", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{"_id": "u1", "firstName": "Ada"})
	})
	c := newTestClient(t, mux)

	user, err := c.Login(context.Background(), "ada@dev.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "jwt-abc", c.Token())
}

func TestLoginFailureSurfacesStatusAndBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid credentials format"))
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), "x", "y")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid credentials")
}

func TestProfileUnauthorizedMapsToErrUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /profile/view", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c := newTestClient(t, mux)

	_, err := c.Profile(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestRequestsCarrySessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "jwt-abc", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{"_id": "u1"})
	})
	mux.HandleFunc("GET /feed", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("token")
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", ck.Value)
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"_id": "u2", "firstName": "Grace"}}})
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), "a", "b")
	require.NoError(t, err)

	feed, err := c.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Grace", feed[0].FirstName)
}

func TestClearSessionDropsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "jwt-abc", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{"_id": "u1"})
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), "a", "b")
	require.NoError(t, err)
	require.NotEmpty(t, c.Token())

	c.ClearSession()
	assert.Empty(t, c.Token())
}

func TestChatHistoryParsesBothSenderShapes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /chat/u2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"messages":[
			{"_id":"m1","senderId":{"_id":"u2","firstName":"Grace"},"text":"hi","createdAt":"2025-06-01T10:00:00Z"},
			{"_id":"m2","senderId":"u1","text":"hello"}
		]}`))
	})
	c := newTestClient(t, mux)

	msgs, err := c.ChatHistory(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "u2", msgs[0].SenderID)
	assert.Equal(t, "Grace", msgs[0].SenderName)
	assert.Equal(t, "u1", msgs[1].SenderID)
}

func TestSendAndReviewRequestPaths(t *testing.T) {
	var gotPaths []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
	})
	c := newTestClient(t, mux)

	require.NoError(t, c.SendRequest(context.Background(), StatusInterested, "u9"))
	require.NoError(t, c.ReviewRequest(context.Background(), StatusAccepted, "r7"))
	assert.Equal(t, []string{"/request/send/interested/u9", "/request/review/accepted/r7"}, gotPaths)
}
