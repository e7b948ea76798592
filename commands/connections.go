package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Connections lists matches, or removes one with `connections remove`.
func (a *App) Connections(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: connections [remove --user:<id>]")
		return
	}
	if _, ok := a.requireLogin(); !ok {
		return
	}

	if len(args) > 0 && args[0] == "remove" {
		a.unfriend(args[1:])
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	users, err := a.api.Connections(ctx)
	if err != nil {
		a.toasts.ErrorMsg("Failed to load connections.")
		log.Debug().Err(err).Msg("connections fetch failed")
		return
	}
	a.conns.Set(users)

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No connections yet. Go swipe on the feed!")
		return
	}
	fmt.Fprintln(a.out, "Your connections:")
	for _, u := range users {
		line := fmt.Sprintf("  %s  (%s)", u.FullName(), u.ID)
		if len(u.Skills) > 0 {
			line += "  [" + strings.Join(u.Skills, ", ") + "]"
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, "Start chatting with `chat --user:<id>`.")
}

// unfriend removes a connection after an explicit confirmation.
func (a *App) unfriend(args []string) {
	id := argValue(args, "--user:")
	if id == "" {
		id = a.promptLine("Enter the connection id to remove: ")
	}
	target := a.conns.Find(id)
	if target == nil {
		fmt.Fprintln(a.out, "No connection with that id. Run `connections` to refresh the list.")
		return
	}

	answer := strings.ToLower(a.promptLine(fmt.Sprintf("Remove %s from your connections? (y/n): ", target.FullName())))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	if err := a.api.Unfriend(ctx, id); err != nil {
		a.toasts.ErrorMsg("Failed to remove connection.")
		log.Debug().Err(err).Msg("unfriend failed")
		return
	}
	a.conns.Remove(id)
	a.toasts.SuccessMsg("Connection removed.")
}
