package commands

import (
	"fmt"
)

// Notifications lists message notifications newest-first, or marks them
// all read with `notifications read`.
func (a *App) Notifications(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: notifications [read]")
		return
	}
	if _, ok := a.requireLogin(); !ok {
		return
	}

	if len(args) > 0 && args[0] == "read" {
		a.notifs.MarkAllRead()
		a.toasts.SuccessMsg("All notifications marked as read.")
		return
	}

	all := a.notifs.All()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No message notifications.")
		return
	}
	for _, n := range all {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		preview := n.LastMessage
		if len(preview) > 40 {
			preview = preview[:40] + "..."
		}
		fmt.Fprintf(a.out, "%s %s: %s\n", marker, n.Name, preview)
	}
	fmt.Fprintf(a.out, "%d unread. Open one with `chat --user:<id>`.\n", a.notifs.UnreadCount())
}
