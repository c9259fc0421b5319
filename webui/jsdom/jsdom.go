//go:build js && wasm

// Package jsdom backs webui.Document with the browser DOM.
package jsdom

import (
	"syscall/js"

	"github.com/muhammadheryan/railway-reservation/webui"
)

type Document struct {
	v js.Value
}

// New wraps the global document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) ElementByID(id string) webui.Element {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v}
}

func (d *Document) CreateElement(tag string) webui.Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

func (d *Document) Body() webui.Element {
	return &Element{v: d.v.Get("body")}
}

// Ready runs fn once the DOM is parsed.
func (d *Document) Ready(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) interface{} {
		cb.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", cb)
}

// Element is a pointer so it can key the page timers; js.Value itself is not comparable.
type Element struct {
	v         js.Value
	listeners []listener
}

type listener struct {
	event string
	fn    js.Func
}

func (e *Element) Value() string     { return e.v.Get("value").String() }
func (e *Element) SetValue(v string) { e.v.Set("value", v) }
func (e *Element) Text() string      { return e.v.Get("textContent").String() }

// SetText writes textContent so user input is never parsed as markup.
func (e *Element) SetText(s string) { e.v.Set("textContent", s) }

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Get(prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Set(prop, value)
}

func (e *Element) ClassName() string        { return e.v.Get("className").String() }
func (e *Element) SetClassName(name string) { e.v.Set("className", name) }

func (e *Element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *Element) AppendChild(child webui.Element) {
	if c, ok := child.(*Element); ok {
		e.v.Call("appendChild", c.v)
	}
}

func (e *Element) Remove() {
	e.v.Call("remove")
	e.Release()
}

func (e *Element) AddEventListener(event string, fn func(webui.Event)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		var ev webui.Event = noEvent{}
		if len(args) > 0 {
			ev = &Event{v: args[0]}
		}
		fn(ev)
		return nil
	})
	e.listeners = append(e.listeners, listener{event: event, fn: f})
	e.v.Call("addEventListener", event, f)
}

// Release frees the Go callbacks registered on the element.
func (e *Element) Release() {
	for _, l := range e.listeners {
		e.v.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	e.listeners = nil
}

type Event struct {
	v js.Value
}

func (e *Event) PreventDefault() { e.v.Call("preventDefault") }

type noEvent struct{}

func (noEvent) PreventDefault() {}
