package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
)

// Register creates a new account and logs straight into it.
func (a *App) Register(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: register [--first:<name>] [--last:<name>] [--email:<email>]")
		fmt.Fprintln(a.out, "Password is always prompted interactively and must be confirmed.")
		return
	}

	first := argValue(args, "--first:")
	last := argValue(args, "--last:")
	email := argValue(args, "--email:")
	if first == "" {
		first = a.promptLine("Enter first name: ")
	}
	if last == "" {
		last = a.promptLine("Enter last name (optional): ")
	}
	if email == "" {
		email = a.promptLine("Enter email: ")
	}
	password := a.promptLine("Enter password: ")
	confirm := a.promptLine("Confirm password: ")

	// Validation failures never reach the network.
	if first == "" || email == "" || password == "" {
		a.toasts.WarningMsg("First name, email and password are required.")
		return
	}
	if !strings.Contains(email, "@") {
		a.toasts.WarningMsg("Please enter a valid email address.")
		return
	}
	if password != confirm {
		a.toasts.ErrorMsg("Passwords do not match. Please try again.")
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()

	user, err := a.api.Signup(ctx, api.SignupInput{
		FirstName: first,
		LastName:  last,
		EmailID:   email,
		Password:  password,
	})
	if err != nil {
		a.toasts.ErrorMsg("Registration failed: " + err.Error())
		log.Debug().Err(err).Msg("signup failed")
		return
	}

	a.users.Set(user)
	a.guard.Forget()
	a.toasts.SuccessMsg("Welcome to DevTinder, " + user.FirstName + "!")
	a.openRealtime()
}
