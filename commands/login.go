package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
)

// Login authenticates and warms the session: requests badge, socket
// connection, notification listener.
func (a *App) Login(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: login [--email:<email>] [--password:<password>]")
		fmt.Fprintln(a.out, "If no email/password is provided, you will be prompted interactively.")
		return
	}

	// Already-authenticated users are bounced straight back, without a
	// network call when local state has them.
	if u, ok := a.guard.Check(context.Background()); ok {
		a.toasts.InfoMsg("You are already logged in as " + u.FullName() + ".")
		return
	}

	email := argValue(args, "--email:")
	password := argValue(args, "--password:")
	if email == "" {
		email = a.promptLine("Enter email: ")
	}
	if password == "" {
		password = a.promptLine("Enter password: ")
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		message := "Unable to log in. Please check your email and password."
		var apiErr *api.Error
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			message = "Incorrect email or password. Please try again."
		case errors.As(err, &apiErr) && apiErr.Status == 404:
			message = "Account not found. Please sign up first."
		}
		a.toasts.ErrorMsg(message)
		log.Debug().Err(err).Msg("login failed")
		return
	}

	a.users.Set(user)
	a.guard.Forget()
	a.toasts.SuccessMsg("Login successful! Welcome back.")

	a.fetchRequestsBadge()
	a.openRealtime()
}

// fetchRequestsBadge pre-fetches received requests right after login so
// the badge count is available on entering the app. Failure only logs.
func (a *App) fetchRequestsBadge() {
	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()

	requests, err := a.api.ReceivedRequests(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch pending requests")
		return
	}
	a.reqs.Set(requests)
	if n := len(requests); n > 0 {
		fmt.Fprintf(a.out, "You have %d pending connection request(s)! Use the `requests` command to review them.\n", n)
	}
}
