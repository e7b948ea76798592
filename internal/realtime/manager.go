package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/config"
)

// ErrNoToken is returned when Connect is called without a session token.
var ErrNoToken = errors.New("realtime: no authentication token for socket connection")

// ErrNotConnected is returned by Emit when there is no live connection.
var ErrNotConnected = errors.New("realtime: socket not connected")

// Handler consumes the payload of one inbound event.
type Handler func(payload json.RawMessage)

// Manager owns the single realtime connection for a session. It is
// constructed once and passed by reference; Connect reuses a live
// connection, revives a dead one, and only dials fresh when none exists.
// Reset tears the connection down at logout so the next Connect starts a
// new session.
type Manager struct {
	cfg     config.SocketConfig
	tokenFn func() string

	mu        sync.Mutex
	conn      *websocket.Conn
	alive     bool
	gen       int
	handlers  map[string][]Handler
	onConnect map[int]func()
	hookSeq   int

	writeMu sync.Mutex
}

// NewManager builds a manager. tokenFn reads the session token (from the
// API client's cookie jar); it is consulted on every fresh dial.
func NewManager(cfg config.SocketConfig, tokenFn func() string) *Manager {
	return &Manager{
		cfg:       cfg,
		tokenFn:   tokenFn,
		handlers:  make(map[string][]Handler),
		onConnect: make(map[int]func()),
	}
}

// Connect returns the shared connection, dialing or reviving it as
// needed. Reconnect hooks run after every successful dial.
func (m *Manager) Connect() (*websocket.Conn, error) {
	m.mu.Lock()
	if m.conn != nil && m.alive {
		conn := m.conn
		m.mu.Unlock()
		return conn, nil
	}
	m.mu.Unlock()

	token := m.tokenFn()
	if token == "" {
		return nil, ErrNoToken
	}

	u, err := url.Parse(m.cfg.URL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: m.cfg.Handshake()}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("url", m.cfg.URL).Msg("socket connected")

	m.mu.Lock()
	if m.conn != nil {
		m.conn.Close()
	}
	m.conn = conn
	m.alive = true
	m.gen++
	gen := m.gen
	hooks := make([]func(), 0, len(m.onConnect))
	for _, h := range m.onConnect {
		hooks = append(hooks, h)
	}
	m.mu.Unlock()

	go m.readLoop(conn, gen)

	for _, h := range hooks {
		h()
	}
	return conn, nil
}

// Reset closes and discards the connection and drops all listeners. Used
// at logout; the next Connect builds a fresh connection for the new
// session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
	}
	m.alive = false
	m.gen++
	m.handlers = make(map[string][]Handler)
	m.onConnect = make(map[int]func())
}

// Connected reports whether the connection is live.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil && m.alive
}

// EnsureConnected revives the connection when a handle exists but is
// disconnected. Idempotent; a missing handle is left alone.
func (m *Manager) EnsureConnected() {
	m.mu.Lock()
	needs := m.conn != nil && !m.alive
	m.mu.Unlock()
	if !needs {
		return
	}
	if _, err := m.Connect(); err != nil {
		log.Warn().Err(err).Msg("socket health check reconnect failed")
	}
}

// HealthLoop periodically runs EnsureConnected until ctx is cancelled.
func (m *Manager) HealthLoop(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.HealthInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EnsureConnected()
		}
	}
}

// Emit sends one event over the connection. A failed send is not queued
// or retried.
func (m *Manager) Emit(event string, payload any) error {
	m.mu.Lock()
	conn := m.conn
	alive := m.alive
	m.mu.Unlock()
	if conn == nil || !alive {
		return ErrNotConnected
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return conn.WriteJSON(Envelope{Event: event, Payload: raw})
}

// On registers a handler for an event.
func (m *Manager) On(event string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[event] = append(m.handlers[event], h)
}

// Off removes all handlers for an event.
func (m *Manager) Off(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, event)
}

// OnConnect registers a hook run after every successful dial, used to
// rejoin chat rooms after a reconnect. The returned func unregisters it.
func (m *Manager) OnConnect(h func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hookSeq++
	id := m.hookSeq
	m.onConnect[id] = h
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.onConnect, id)
	}
}

func (m *Manager) readLoop(conn *websocket.Conn, gen int) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.mu.Lock()
			stale := gen != m.gen
			if !stale {
				m.alive = false
			}
			m.mu.Unlock()
			if stale {
				return
			}
			log.Info().Err(err).Msg("socket disconnected")
			go m.redial()
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Warn().Err(err).Msg("malformed socket frame")
			continue
		}
		if env.Event == EventError {
			log.Error().RawJSON("payload", errPayload(env.Payload)).Msg("socket error event")
		}
		m.dispatch(env)
	}
}

func (m *Manager) dispatch(env Envelope) {
	m.mu.Lock()
	hs := make([]Handler, len(m.handlers[env.Event]))
	copy(hs, m.handlers[env.Event])
	m.mu.Unlock()
	for _, h := range hs {
		h(env.Payload)
	}
}

// redial retries a dropped connection a bounded number of times with a
// fixed delay, then gives up. Reset cancels the loop.
func (m *Manager) redial() {
	for attempt := 1; attempt <= m.cfg.ReconnectAttempts; attempt++ {
		time.Sleep(m.cfg.ReconnectDelay())

		m.mu.Lock()
		gone := m.conn == nil
		revived := m.alive
		m.mu.Unlock()
		if gone || revived {
			return
		}

		if _, err := m.Connect(); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("socket reconnect failed")
			continue
		}
		return
	}
	log.Error().Int("attempts", m.cfg.ReconnectAttempts).Msg("socket reconnect abandoned")
}

func errPayload(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(`null`)
	}
	return raw
}
