package toast

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type classifies a toast.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

// DefaultDuration is how long a toast stays active when no duration is
// given.
const DefaultDuration = 3 * time.Second

// Toast is one transient user-facing notice.
type Toast struct {
	ID       string
	Message  string
	Type     Type
	Duration time.Duration
}

// Center holds active toasts, renders them through a sink, and
// auto-dismisses each after its duration.
type Center struct {
	sink func(Toast)

	mu     sync.Mutex
	toasts []Toast
}

// NewCenter builds a center rendering through sink.
func NewCenter(sink func(Toast)) *Center {
	return &Center{sink: sink}
}

// Show adds a toast and schedules its dismissal. Returns the toast id.
func (c *Center) Show(message string, t Type, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}
	toast := Toast{ID: uuid.NewString(), Message: message, Type: t, Duration: duration}

	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	c.mu.Unlock()

	if c.sink != nil {
		c.sink(toast)
	}
	time.AfterFunc(duration, func() { c.Remove(toast.ID) })
	return toast.ID
}

// Remove dismisses a toast by id.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Active returns the currently displayed toasts.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// SuccessMsg shows a success toast with the default duration.
func (c *Center) SuccessMsg(message string) string { return c.Show(message, Success, 0) }

// ErrorMsg shows an error toast with the default duration.
func (c *Center) ErrorMsg(message string) string { return c.Show(message, Error, 0) }

// WarningMsg shows a warning toast with the default duration.
func (c *Center) WarningMsg(message string) string { return c.Show(message, Warning, 0) }

// InfoMsg shows an info toast with the default duration.
func (c *Center) InfoMsg(message string) string { return c.Show(message, Info, 0) }

// TerminalSink renders toasts as colored lines on w.
func TerminalSink(w io.Writer) func(Toast) {
	colors := map[Type]string{
		Success: "\033[32m",
		Error:   "\033[31m",
		Warning: "\033[33m",
		Info:    "\033[36m",
	}
	return func(t Toast) {
		fmt.Fprintf(w, "%s[%s]\033[0m %s\n", colors[t.Type], t.Type, t.Message)
	}
}
