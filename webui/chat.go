package webui

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ChatReplyDelay = 500 * time.Millisecond

	ChatUnavailableReply = "AI Assistant: unavailable right now"

	classActive  = "active"
	classUserMsg = "user-msg"
	classBotMsg  = "bot-msg"
)

// ChatView holds the widget's elements. Send, Input and Messages may be nil
// on pages that only carry the toggle.
type ChatView struct {
	Toggle   Element
	Box      Element
	Send     Element
	Input    Element
	Messages Element
}

type chatReplyKey struct {
	chat *Chat
	seq  uint64
}

type Chat struct {
	view      ChatView
	doc       Document
	responder Responder
	timers    *Timers
	log       *zap.Logger
	seq       uint64
}

func NewChat(view ChatView, doc Document, responder Responder, timers *Timers, log *zap.Logger) *Chat {
	if responder == nil {
		responder = PlaceholderResponder{}
	}
	return &Chat{view: view, doc: doc, responder: responder, timers: timers, log: log}
}

func (c *Chat) Bind() {
	c.view.Toggle.AddEventListener("click", c.OnToggle)
	if c.view.Send != nil && c.view.Input != nil {
		c.view.Send.AddEventListener("click", c.OnSend)
	}
}

func (c *Chat) OnToggle(Event) {
	c.view.Box.ToggleClass(classActive)
}

// OnSend posts the typed message and schedules the assistant's reply. Each
// message gets its own reply timer.
func (c *Chat) OnSend(Event) {
	msg := strings.TrimSpace(c.view.Input.Value())
	if msg == "" {
		return
	}

	c.view.Input.SetValue("")
	if c.view.Messages == nil {
		return
	}
	c.appendMessage(classUserMsg, msg)

	c.seq++
	c.timers.Schedule(chatReplyKey{c, c.seq}, ChatReplyDelay, func() {
		reply, err := c.responder.Respond(context.Background(), msg)
		if err != nil {
			c.log.Error("[Chat] responder", zap.String("error", err.Error()))
			reply = ChatUnavailableReply
		}
		c.appendMessage(classBotMsg, reply)
	})
}

// appendMessage adds text as content, never as markup.
func (c *Chat) appendMessage(class, text string) {
	el := c.doc.CreateElement("div")
	el.SetClassName(class)
	el.SetText(text)
	c.view.Messages.AppendChild(el)
}
