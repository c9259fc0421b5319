package webui_test

import (
	"sort"
	"strings"
	"time"

	"github.com/muhammadheryan/railway-reservation/webui"
)

type fakeEl struct {
	tag       string
	value     string
	text      string
	className string
	style     map[string]string
	children  []*fakeEl
	parent    *fakeEl
	listeners map[string][]func(webui.Event)
}

func newEl(tag string) *fakeEl {
	return &fakeEl{tag: tag, style: map[string]string{}, listeners: map[string][]func(webui.Event){}}
}

func (e *fakeEl) Value() string               { return e.value }
func (e *fakeEl) SetValue(v string)           { e.value = v }
func (e *fakeEl) Text() string                { return e.text }
func (e *fakeEl) SetText(s string)            { e.text = s }
func (e *fakeEl) Style(prop string) string    { return e.style[prop] }
func (e *fakeEl) SetStyle(prop, value string) { e.style[prop] = value }
func (e *fakeEl) ClassName() string           { return e.className }
func (e *fakeEl) SetClassName(name string)    { e.className = name }

func (e *fakeEl) ToggleClass(name string) bool {
	classes := strings.Fields(e.className)
	for i, c := range classes {
		if c == name {
			e.className = strings.Join(append(classes[:i], classes[i+1:]...), " ")
			return false
		}
	}
	e.className = strings.Join(append(classes, name), " ")
	return true
}

func (e *fakeEl) hasClass(name string) bool {
	for _, c := range strings.Fields(e.className) {
		if c == name {
			return true
		}
	}
	return false
}

func (e *fakeEl) AppendChild(child webui.Element) {
	c := child.(*fakeEl)
	c.parent = e
	e.children = append(e.children, c)
}

func (e *fakeEl) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

func (e *fakeEl) AddEventListener(event string, fn func(webui.Event)) {
	e.listeners[event] = append(e.listeners[event], fn)
}

// fire dispatches event and reports whether a handler prevented the default.
func (e *fakeEl) fire(event string) bool {
	ev := &fakeEvent{}
	for _, fn := range e.listeners[event] {
		fn(ev)
	}
	return ev.prevented
}

// typeInto sets the value and fires input, like a keystroke.
func (e *fakeEl) typeInto(v string) {
	e.value = v
	e.fire("input")
}

type fakeEvent struct {
	prevented bool
}

func (e *fakeEvent) PreventDefault() { e.prevented = true }

type fakeDoc struct {
	ids  map[string]*fakeEl
	body *fakeEl
}

func newDoc(ids ...string) *fakeDoc {
	d := &fakeDoc{ids: map[string]*fakeEl{}, body: newEl("body")}
	for _, id := range ids {
		d.ids[id] = newEl("div")
	}
	return d
}

func (d *fakeDoc) el(id string) *fakeEl { return d.ids[id] }

func (d *fakeDoc) ElementByID(id string) webui.Element {
	if el, ok := d.ids[id]; ok {
		return el
	}
	return nil
}

func (d *fakeDoc) CreateElement(tag string) webui.Element { return newEl(tag) }

func (d *fakeDoc) Body() webui.Element { return d.body }

// alerts returns the alert elements currently attached to the body.
func (d *fakeDoc) alerts() []*fakeEl {
	var out []*fakeEl
	for _, c := range d.body.children {
		if c.hasClass("custom-alert") {
			out = append(out, c)
		}
	}
	return out
}

// manualScheduler fires timers only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) webui.Timer {
	t := &manualTimer{at: s.now + d, seq: len(s.timers), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in deadline order.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if len(due) == 0 {
			break
		}
		t := due[0]
		s.now = t.at
		t.fired = true
		t.fn()
	}
	s.now = target
}

func (s *manualScheduler) due(target time.Duration) []*manualTimer {
	var out []*manualTimer
	for _, t := range s.timers {
		if !t.fired && !t.stopped && t.at <= target {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].at == out[j].at {
			return out[i].seq < out[j].seq
		}
		return out[i].at < out[j].at
	})
	return out
}
