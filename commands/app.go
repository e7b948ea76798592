package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/api"
	"github.com/AyushAgarwal15/devtinder-cli/internal/config"
	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
	"github.com/AyushAgarwal15/devtinder-cli/internal/realtime"
	"github.com/AyushAgarwal15/devtinder-cli/internal/session"
	"github.com/AyushAgarwal15/devtinder-cli/internal/state"
	"github.com/AyushAgarwal15/devtinder-cli/internal/toast"
)

// App wires the API client, the realtime manager, the state stores, and
// the toast center behind the REPL commands. Everything is owned here and
// passed by reference; there is no package-level shared state.
type App struct {
	cfg    *config.Config
	api    *api.Client
	rt     *realtime.Manager
	users  *state.UserStore
	feed   *state.FeedStore
	conns  *state.ConnectionStore
	reqs   *state.RequestStore
	notifs *state.NotificationStore
	toasts *toast.Center
	guard  *session.Guard

	in  *bufio.Reader
	out io.Writer

	mu         sync.Mutex
	activeChat string
	healthStop context.CancelFunc
}

// NewApp builds the full command surface against the given config.
func NewApp(cfg *config.Config) *App {
	client := api.New(cfg.Server)
	users := state.NewUserStore()
	return &App{
		cfg:    cfg,
		api:    client,
		rt:     realtime.NewManager(cfg.Socket, client.Token),
		users:  users,
		feed:   state.NewFeedStore(),
		conns:  state.NewConnectionStore(),
		reqs:   state.NewRequestStore(),
		notifs: state.NewNotificationStore(),
		toasts: toast.NewCenter(toast.TerminalSink(os.Stdout)),
		guard:  session.NewGuard(client, users, cfg.Auth.CheckTimeout(), cfg.Auth.CheckThrottle()),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// requireLogin returns the logged-in user or prints the usual nudge.
func (a *App) requireLogin() (*models.User, bool) {
	if u := a.users.Get(); u != nil {
		return u, true
	}
	fmt.Fprintln(a.out, "You must login first using the login command.")
	return nil, false
}

// argValue extracts a --key:value argument.
func argValue(args []string, prefix string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix)
		}
	}
	return ""
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// promptLine asks interactively when a value was not passed as an
// argument.
func (a *App) promptLine(label string) string {
	fmt.Fprint(a.out, label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// openRealtime connects the shared socket for the session, hooks the
// notification listener, and starts the periodic health check.
func (a *App) openRealtime() {
	if _, err := a.rt.Connect(); err != nil {
		log.Warn().Err(err).Msg("socket connection failed")
		return
	}

	a.rt.On(realtime.EventMessageNotification, a.handleNotification)

	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.healthStop = cancel
	a.mu.Unlock()
	go a.rt.HealthLoop(ctx)
}

// closeRealtime tears the socket down, at logout or exit.
func (a *App) closeRealtime() {
	a.mu.Lock()
	stop := a.healthStop
	a.healthStop = nil
	a.mu.Unlock()
	if stop != nil {
		stop()
	}
	a.rt.Reset()
}

// handleNotification upserts the sender's unread record. When the chat
// with that sender is currently open it is immediately marked read again.
func (a *App) handleNotification(payload json.RawMessage) {
	var msg models.Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		log.Warn().Err(err).Msg("malformed message notification")
		return
	}

	self := a.users.Get()
	if self == nil || msg.SenderID == "" || msg.SenderID == self.ID {
		return
	}

	name := msg.SenderName
	if name == "" {
		name = "User"
	}
	ts := msg.CreatedAt
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339)
	}
	a.notifs.Add(msg.SenderID, name, msg.SenderPhoto, msg.Text, ts)

	a.mu.Lock()
	open := a.activeChat == msg.SenderID
	a.mu.Unlock()
	if open {
		a.notifs.MarkRead(msg.SenderID)
	}
}

func (a *App) setActiveChat(counterpartID string) {
	a.mu.Lock()
	a.activeChat = counterpartID
	a.mu.Unlock()
}

// Badges prints the navbar-style counters.
func (a *App) Badges() {
	fmt.Fprintf(a.out, "Requests: %d | Unread messages: %d\n", a.reqs.Count(), a.notifs.UnreadCount())
}

// Exit cleans the session up before the process ends.
func (a *App) Exit() {
	if a.users.Get() != nil {
		a.closeRealtime()
	}
}

func ctxWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
