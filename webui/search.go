package webui

import (
	"time"

	"github.com/muhammadheryan/railway-reservation/model"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
)

const (
	MsgFillSearchFields = "Please fill all fields to search train!"

	SearchLabel      = "Search"
	SearchingLabel   = "Searching..."
	SearchResetDelay = 1000 * time.Millisecond
)

type SearchView struct {
	Button      Element
	Source      Element
	Destination Element
	Date        Element
}

// SearchButton shows a short loading label once source, destination and date
// are all filled in. A second click restarts the reset timer.
type SearchButton struct {
	view   SearchView
	alert  *Alerter
	timers *Timers
}

func NewSearchButton(view SearchView, alert *Alerter, timers *Timers) *SearchButton {
	return &SearchButton{view: view, alert: alert, timers: timers}
}

func (b *SearchButton) Bind() {
	b.view.Button.AddEventListener("click", b.OnClick)
}

func (b *SearchButton) OnClick(Event) {
	form := model.SearchForm{
		Source:      b.view.Source.Value(),
		Destination: b.view.Destination.Value(),
		Date:        b.view.Date.Value(),
	}
	if err := validatorx.ValidateStruct(&form); err != nil {
		b.alert.Show(MsgFillSearchFields, AlertError)
		return
	}

	b.view.Button.SetText(SearchingLabel)
	b.timers.Schedule(b.view.Button, SearchResetDelay, func() {
		b.view.Button.SetText(SearchLabel)
	})
}
