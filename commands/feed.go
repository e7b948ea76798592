package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Feed runs the swipe loop over the candidate feed.
func (a *App) Feed(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: feed")
		fmt.Fprintln(a.out, "Shows candidates one by one; decide with i (interested), x (ignore) or q (quit).")
		return
	}
	if _, ok := a.requireLogin(); !ok {
		return
	}

	if a.feed.Len() == 0 {
		ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
		defer cancel()
		users, err := a.api.Feed(ctx)
		if err != nil {
			a.toasts.ErrorMsg("Failed to load the feed. Please try again.")
			log.Debug().Err(err).Msg("feed fetch failed")
			return
		}
		a.feed.Set(users)
	}

	for {
		candidate := a.feed.Peek()
		if candidate == nil {
			fmt.Fprintln(a.out, "No more developers to show. Check back later!")
			return
		}

		a.printCard(*candidate)
		answer := strings.ToLower(a.promptLine("[i]nterested / [x] ignore / [q]uit: "))
		switch answer {
		case "i":
			a.decide(candidate.ID, api.StatusInterested)
		case "x":
			a.decide(candidate.ID, api.StatusIgnored)
		case "q":
			return
		default:
			fmt.Fprintln(a.out, "Please answer i, x or q.")
		}
	}
}

// decide removes the candidate from the feed immediately, then reports
// the decision. The card never comes back even if the request fails.
func (a *App) decide(userID, status string) {
	a.feed.Remove(userID)

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	if err := a.api.SendRequest(ctx, status, userID); err != nil {
		a.toasts.ErrorMsg("Failed to send your decision. Please try again later.")
		log.Debug().Err(err).Str("status", status).Msg("swipe decision failed")
		return
	}
	if status == api.StatusInterested {
		a.toasts.SuccessMsg("Connection request sent!")
	} else {
		a.toasts.SuccessMsg("User Ignored!")
	}
}

func (a *App) printCard(u models.User) {
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	fmt.Fprintf(a.out, "%s", u.FullName())
	if u.Age > 0 {
		fmt.Fprintf(a.out, ", %d", u.Age)
	}
	if u.Gender != "" {
		fmt.Fprintf(a.out, " (%s)", u.Gender)
	}
	fmt.Fprintln(a.out)
	if u.About != "" {
		fmt.Fprintln(a.out, u.About)
	}
	if len(u.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(u.Skills, ", "))
	}
	if u.GithubURL != "" {
		fmt.Fprintf(a.out, "GitHub: %s\n", u.GithubURL)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
}
