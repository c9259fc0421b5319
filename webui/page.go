package webui

import (
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

// Behavior names reported by Page.Mount.
const (
	BehaviorLogin       = "login"
	BehaviorRegister    = "register"
	BehaviorSearch      = "search"
	BehaviorClassSelect = "class-select"
	BehaviorChat        = "chat"
)

type Option func(*Page)

func WithScheduler(s Scheduler) Option {
	return func(p *Page) { p.timers = NewTimers(s) }
}

func WithResponder(r Responder) Option {
	return func(p *Page) { p.responder = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Page) { p.log = l }
}

// Page wires every behavior whose elements exist on the document.
type Page struct {
	doc       Document
	timers    *Timers
	responder Responder
	log       *zap.Logger
	alert     *Alerter
}

func NewPage(doc Document, opts ...Option) *Page {
	p := &Page{doc: doc}
	for _, opt := range opts {
		opt(p)
	}
	if p.timers == nil {
		p.timers = NewTimers(RealScheduler{})
	}
	if p.responder == nil {
		p.responder = PlaceholderResponder{}
	}
	if p.log == nil {
		p.log = logger.Get()
	}
	p.alert = NewAlerter(doc, p.timers)
	return p
}

// Alerter exposes the page's alert helper.
func (p *Page) Alerter() *Alerter {
	return p.alert
}

// Mount binds the behaviors and returns the names of those it attached.
func (p *Page) Mount() []string {
	var mounted []string

	if els, ok := lookup(p.doc, IDLoginForm, IDEmail, IDPassword); ok {
		NewLoginForm(LoginView{Form: els[0], Email: els[1], Password: els[2]}, p.alert).Bind()
		mounted = append(mounted, BehaviorLogin)
	}

	if els, ok := lookup(p.doc, IDRegisterForm, IDPassword, IDConfirmPassword, IDPhone); ok {
		NewRegisterForm(RegisterView{Form: els[0], Password: els[1], ConfirmPassword: els[2], Phone: els[3]}, p.alert).Bind()
		mounted = append(mounted, BehaviorRegister)
	}

	if els, ok := lookup(p.doc, IDSearchButton, IDSource, IDDestination, IDDate); ok {
		NewSearchButton(SearchView{Button: els[0], Source: els[1], Destination: els[2], Date: els[3]}, p.alert, p.timers).Bind()
		mounted = append(mounted, BehaviorSearch)
	}

	if sel := p.doc.ElementByID(IDClassSelect); sel != nil {
		NewClassSelect(sel, p.log).Bind()
		mounted = append(mounted, BehaviorClassSelect)
	}

	if els, ok := lookup(p.doc, IDChatToggle, IDChatBox); ok {
		view := ChatView{
			Toggle:   els[0],
			Box:      els[1],
			Send:     p.doc.ElementByID(IDChatSend),
			Input:    p.doc.ElementByID(IDChatInput),
			Messages: p.doc.ElementByID(IDChatMessages),
		}
		NewChat(view, p.doc, p.responder, p.timers, p.log).Bind()
		mounted = append(mounted, BehaviorChat)
	}

	p.log.Debug("[Page] mounted", zap.Strings("behaviors", mounted))
	return mounted
}

// Unmount cancels every pending timer so nothing touches the page afterwards.
func (p *Page) Unmount() {
	p.timers.CancelAll()
}
