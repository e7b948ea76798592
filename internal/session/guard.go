package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
	"github.com/AyushAgarwal15/devtinder-cli/internal/state"
)

// ProfileFetcher is the slice of the API client the guard needs.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*models.User, error)
}

// Guard decides whether the user is already authenticated before an
// auth-only flow runs. Local state short-circuits without a network call;
// otherwise the profile endpoint is checked under a short timeout, and a
// negative answer is remembered so the server is not re-asked within the
// throttle window.
type Guard struct {
	api      ProfileFetcher
	users    *state.UserStore
	timeout  time.Duration
	throttle time.Duration
	now      func() time.Time

	mu           sync.Mutex
	lastNegative time.Time
}

// NewGuard builds a guard over the user store.
func NewGuard(api ProfileFetcher, users *state.UserStore, timeout, throttle time.Duration) *Guard {
	return &Guard{api: api, users: users, timeout: timeout, throttle: throttle, now: time.Now}
}

// Check reports whether a session exists, populating the user store when
// the server confirms one. Failures and timeouts mean "not logged in".
func (g *Guard) Check(ctx context.Context) (*models.User, bool) {
	if u := g.users.Get(); u != nil {
		return u, true
	}

	g.mu.Lock()
	throttled := !g.lastNegative.IsZero() && g.now().Sub(g.lastNegative) < g.throttle
	g.mu.Unlock()
	if throttled {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	u, err := g.api.Profile(ctx)
	if err != nil {
		// 401 just means no session; anything else is worth a louder line.
		if errors.Is(err, api.ErrUnauthorized) {
			log.Debug().Err(err).Msg("auth check negative")
		} else {
			log.Warn().Err(err).Msg("auth check failed")
		}
		g.mu.Lock()
		g.lastNegative = g.now()
		g.mu.Unlock()
		return nil, false
	}

	g.users.Set(u)
	return u, true
}

// Forget clears the remembered negative result, e.g. right after a
// successful login or logout.
func (g *Guard) Forget() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastNegative = time.Time{}
}
