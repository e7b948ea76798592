package commands

import (
	"github.com/rs/zerolog/log"
)

// Logout tears the session down: socket first, then the server session,
// then every local store.
func (a *App) Logout() {
	if _, ok := a.requireLogin(); !ok {
		return
	}

	a.closeRealtime()

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	if err := a.api.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("logout request failed")
		a.toasts.ErrorMsg("Failed to logout. Please try again.")
		return
	}

	a.users.Clear()
	a.feed.Clear()
	a.conns.Clear()
	a.reqs.Clear()
	a.notifs.Clear()
	a.api.ClearSession()
	a.setActiveChat("")

	a.toasts.SuccessMsg("Logged out successfully")
}
