package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
)

// Requests lists pending inbound connection requests.
func (a *App) Requests(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: requests")
		return
	}
	if _, ok := a.requireLogin(); !ok {
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	requests, err := a.api.ReceivedRequests(ctx)
	if err != nil {
		a.toasts.ErrorMsg("Failed to fetch pending requests.")
		log.Debug().Err(err).Msg("requests fetch failed")
		return
	}
	a.reqs.Set(requests)

	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No pending connection requests.")
		return
	}
	fmt.Fprintln(a.out, "Pending connection requests:")
	for _, r := range requests {
		fmt.Fprintf(a.out, "  %s  (request %s)\n", r.FromUser.FullName(), r.ID)
	}
	fmt.Fprintln(a.out, "Use `respond --request:<id>` to accept or reject.")
}

// Respond accepts or rejects one pending request.
func (a *App) Respond(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: respond [--request:<id>]")
		return
	}
	if _, ok := a.requireLogin(); !ok {
		return
	}

	if a.reqs.Count() == 0 {
		a.Requests(nil)
		if a.reqs.Count() == 0 {
			return
		}
	}

	id := argValue(args, "--request:")
	if id == "" {
		id = a.promptLine("Enter the request id to respond to: ")
	}

	var found bool
	for _, r := range a.reqs.All() {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(a.out, "No pending request with that id.")
		return
	}

	action := strings.ToLower(a.promptLine("Enter action (accept/reject): "))
	var status string
	switch action {
	case "accept":
		status = api.StatusAccepted
	case "reject":
		status = api.StatusRejected
	default:
		fmt.Fprintln(a.out, "Invalid action. Must be 'accept' or 'reject'.")
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	if err := a.api.ReviewRequest(ctx, status, id); err != nil {
		a.toasts.ErrorMsg("Failed to respond to the request.")
		log.Debug().Err(err).Msg("request review failed")
		return
	}

	a.reqs.Remove(id)
	if status == api.StatusAccepted {
		a.toasts.SuccessMsg("Connection request accepted!")
	} else {
		a.toasts.SuccessMsg("Connection request rejected!")
	}
}
