package webui

import "time"

const (
	AlertSuccess = "success"
	AlertError   = "error"

	AlertFadeDelay   = 2000 * time.Millisecond
	AlertRemoveDelay = 3000 * time.Millisecond
)

type alertPhase int

const (
	alertFade alertPhase = iota
	alertRemove
)

type alertKey struct {
	el    Element
	phase alertPhase
}

// Alerter shows transient notifications. Each alert fades out and removes
// itself; alerts stack and never replace one another.
type Alerter struct {
	doc    Document
	timers *Timers
}

func NewAlerter(doc Document, timers *Timers) *Alerter {
	return &Alerter{doc: doc, timers: timers}
}

// Show appends a `custom-alert {kind}` div with msg as its text. An empty
// kind means success.
func (a *Alerter) Show(msg, kind string) Element {
	if kind == "" {
		kind = AlertSuccess
	}

	el := a.doc.CreateElement("div")
	el.SetClassName("custom-alert " + kind)
	el.SetText(msg)
	a.doc.Body().AppendChild(el)

	a.timers.Schedule(alertKey{el, alertFade}, AlertFadeDelay, func() {
		el.SetStyle("opacity", "0")
	})
	a.timers.Schedule(alertKey{el, alertRemove}, AlertRemoveDelay, el.Remove)
	return el
}

// Dismiss removes an alert right away and drops its pending timers.
func (a *Alerter) Dismiss(el Element) {
	a.timers.Cancel(alertKey{el, alertFade})
	a.timers.Cancel(alertKey{el, alertRemove})
	el.Remove()
}
