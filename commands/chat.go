package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/internal/chat"
	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
	"github.com/AyushAgarwal15/devtinder-cli/internal/realtime"
)

// Chat opens the interactive chat session with one connection.
func (a *App) Chat(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: chat [--user:<id>]")
		return
	}
	self, ok := a.requireLogin()
	if !ok {
		return
	}

	targetID := argValue(args, "--user:")
	if targetID == "" {
		targetID = a.promptLine("Enter the connection id to chat with: ")
	}
	if targetID == "" || targetID == self.ID {
		fmt.Fprintln(a.out, "Please pass a valid connection id.")
		return
	}

	target := a.conns.Find(targetID)
	if target == nil {
		ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
		u, err := a.api.ProfileByID(ctx, targetID)
		cancel()
		if err != nil {
			a.toasts.ErrorMsg("Could not find that user.")
			log.Debug().Err(err).Msg("counterpart profile fetch failed")
			return
		}
		target = u
	}

	timeline := chat.NewTimeline(self.ID)

	// History load. Failure leaves the timeline empty; no retry.
	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	history, err := a.api.ChatHistory(ctx, targetID)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("chat history fetch failed")
	} else {
		timeline.Replace(history)
	}

	if _, err := a.rt.Connect(); err != nil {
		a.toasts.ErrorMsg("Failed to connect to the chat server.")
		log.Debug().Err(err).Msg("socket connect failed")
		return
	}

	room := chat.NewRoom(a.rt, self.ID, targetID, self.FirstName)

	// Drop stale listeners from a previous chat before adding ours.
	a.rt.Off(realtime.EventReceivedMessage)
	a.rt.Off(realtime.EventChatHistory)

	a.rt.On(realtime.EventReceivedMessage, func(payload json.RawMessage) {
		var msg models.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Warn().Err(err).Msg("malformed chat message")
			return
		}
		a.onChatMessage(timeline, target, msg)
	})
	a.rt.On(realtime.EventChatHistory, func(payload json.RawMessage) {
		var msgs []models.Message
		if err := json.Unmarshal(payload, &msgs); err != nil {
			log.Warn().Err(err).Msg("malformed chat history")
			return
		}
		timeline.ApplySnapshot(msgs)
	})
	offReconnect := a.rt.OnConnect(func() {
		log.Debug().Msg("socket reconnected, rejoining chat")
		if err := room.Rejoin(); err != nil {
			log.Warn().Err(err).Msg("chat rejoin failed")
		}
	})

	if err := room.Join(); err != nil {
		log.Warn().Err(err).Msg("chat join failed")
	}
	a.setActiveChat(targetID)
	a.notifs.MarkRead(targetID)

	defer func() {
		room.Leave()
		offReconnect()
		a.rt.Off(realtime.EventReceivedMessage)
		a.rt.Off(realtime.EventChatHistory)
		a.setActiveChat("")
	}()

	fmt.Fprintf(a.out, "\nChat with %s\n", target.FullName())
	fmt.Fprintln(a.out, "Type your message and press Enter to send. Type 'exit' to quit.")
	fmt.Fprintln(a.out, "----------------------------------------")
	for _, m := range timeline.Messages() {
		a.printMessage(self, target, m)
	}

	fmt.Fprint(a.out, "You: ")
	for {
		line, err := a.in.ReadString('\n')
		if err != nil {
			return
		}
		text := strings.TrimSpace(line)
		if text == "exit" {
			fmt.Fprintln(a.out, "Leaving chat...")
			return
		}

		// Optimistic send: nothing is appended or emitted for blank
		// input, and the entry stays even if the emit fails.
		msg := timeline.AppendLocal(text, self.FirstName)
		if msg == nil {
			fmt.Fprint(a.out, "You: ")
			continue
		}
		if err := room.Send(msg); err != nil {
			if errors.Is(err, realtime.ErrNotConnected) {
				a.toasts.WarningMsg("Not connected. Your message was not sent.")
			}
			log.Warn().Err(err).Msg("message send failed")
		}
		fmt.Fprint(a.out, "You: ")
	}
}

// onChatMessage folds one realtime message into the open chat. Messages
// from other counterparts are left to the notification listener.
func (a *App) onChatMessage(timeline *chat.Timeline, target *models.User, msg models.Message) {
	self := a.users.Get()
	if self == nil {
		return
	}

	switch msg.SenderID {
	case target.ID:
		if timeline.ApplyIncoming(msg) == chat.Appended {
			a.printIncoming(target, msg)
		}
		// The chat is open, so the counterpart's notification is read
		// the moment it lands.
		a.notifs.MarkRead(target.ID)
	case self.ID:
		if msg.TargetID == "" || msg.TargetID == target.ID {
			timeline.ApplyIncoming(msg)
		}
	}
}

// printIncoming redraws the prompt around an asynchronous message, the
// way the REPL keeps the input line intact.
func (a *App) printIncoming(target *models.User, msg models.Message) {
	fmt.Fprint(a.out, "\r")
	name := msg.SenderName
	if name == "" {
		name = target.FirstName
	}
	if ts := msg.ClockTime(); ts != "" {
		fmt.Fprintf(a.out, "\n[%s] %s: %s\n", ts, name, msg.Text)
	} else {
		fmt.Fprintf(a.out, "\n%s: %s\n", name, msg.Text)
	}
	fmt.Fprint(a.out, "You: ")
}

func (a *App) printMessage(self, target *models.User, msg models.Message) {
	name := target.FirstName
	if msg.SenderID == self.ID {
		name = "You"
	}
	if ts := msg.ClockTime(); ts != "" {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", ts, name, msg.Text)
	} else {
		fmt.Fprintf(a.out, "%s: %s\n", name, msg.Text)
	}
}
