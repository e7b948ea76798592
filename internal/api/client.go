package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/AyushAgarwal15/devtinder-cli/internal/config"
)

// ErrUnauthorized is returned when the backend answers 401, meaning the
// session cookie is missing or expired. Callers treat it as "not logged
// in" rather than as a failure.
var ErrUnauthorized = errors.New("not logged in")

// Error carries the HTTP status and whatever error body the backend sent.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

// Client issues credentialed requests against the DevTinder backend. The
// session token lives in the cookie jar, set by the server on login and
// cleared by ClearSession on logout.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New builds a client against the configured base URL.
func New(cfg config.ServerConfig) *Client {
	jar, _ := cookiejar.New(nil)
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout()).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient, baseURL: cfg.BaseURL}
}

// Token returns the session token from the cookie jar, or "" when the
// client has no session.
func (c *Client) Token() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.GetClient().Jar.Cookies(u) {
		if ck.Name == "token" {
			return ck.Value
		}
	}
	return ""
}

// ClearSession drops all cookies so the next login starts fresh.
func (c *Client) ClearSession() {
	jar, _ := cookiejar.New(nil)
	c.http.SetCookieJar(jar)
}

func apiError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return &Error{Status: resp.StatusCode(), Body: resp.String()}
}
