// Package webui holds the page behaviors of the reservation site: form checks,
// the search button, the class selector, the chat widget and alerts. Handlers
// work on injected Element references so they run the same against the
// browser DOM and against an in-memory DOM in tests.
package webui

// Element is the subset of a DOM element the behaviors touch.
// Implementations must be comparable; they are used as timer keys.
type Element interface {
	Value() string
	SetValue(v string)
	Text() string
	SetText(s string)
	Style(prop string) string
	SetStyle(prop, value string)
	ClassName() string
	SetClassName(name string)
	// ToggleClass flips a single class and reports whether it is now present.
	ToggleClass(name string) bool
	AppendChild(child Element)
	Remove()
	AddEventListener(event string, fn func(Event))
}

type Event interface {
	PreventDefault()
}

type Document interface {
	// ElementByID returns nil when the page has no such element.
	ElementByID(id string) Element
	CreateElement(tag string) Element
	Body() Element
}

// Element ids the page behaviors look up.
const (
	IDLoginForm       = "login-form"
	IDEmail           = "email"
	IDPassword        = "password"
	IDRegisterForm    = "register-form"
	IDConfirmPassword = "confirm_password"
	IDPhone           = "phone"
	IDSearchButton    = "search-btn"
	IDSource          = "source"
	IDDestination     = "destination"
	IDDate            = "date"
	IDClassSelect     = "class-select"
	IDChatToggle      = "ai-chat-toggle"
	IDChatBox         = "ai-chat-box"
	IDChatSend        = "ai-send-btn"
	IDChatInput       = "ai-input"
	IDChatMessages    = "ai-messages"
)

// lookup returns the elements for ids, or false when any is missing.
func lookup(doc Document, ids ...string) ([]Element, bool) {
	els := make([]Element, len(ids))
	for i, id := range ids {
		el := doc.ElementByID(id)
		if el == nil {
			return nil, false
		}
		els[i] = el
	}
	return els, true
}
