package webui_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/railway-reservation/webui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerter_Show(t *testing.T) {
	doc := newDoc()
	sched := &manualScheduler{}
	alerter := webui.NewAlerter(doc, webui.NewTimers(sched))

	alerter.Show("Test", "error")

	alerts := doc.alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "custom-alert error", alerts[0].className)
	assert.Equal(t, "Test", alerts[0].text)
	assert.Equal(t, "", alerts[0].Style("opacity"))

	sched.Advance(2 * time.Second)
	require.Len(t, doc.alerts(), 1)
	assert.Equal(t, "0", alerts[0].Style("opacity"))

	sched.Advance(999 * time.Millisecond)
	assert.Len(t, doc.alerts(), 1)
	sched.Advance(time.Millisecond)
	assert.Empty(t, doc.alerts())
}

func TestAlerter_DefaultKind(t *testing.T) {
	doc := newDoc()
	webui.NewAlerter(doc, webui.NewTimers(&manualScheduler{})).Show("Saved", "")

	require.Len(t, doc.alerts(), 1)
	assert.Equal(t, "custom-alert success", doc.alerts()[0].className)
}

func TestAlerter_Stack(t *testing.T) {
	doc := newDoc()
	sched := &manualScheduler{}
	alerter := webui.NewAlerter(doc, webui.NewTimers(sched))

	first := alerter.Show("first", "error")
	sched.Advance(1500 * time.Millisecond)
	alerter.Show("second", "success")
	assert.Len(t, doc.alerts(), 2)

	sched.Advance(1500 * time.Millisecond)
	remaining := doc.alerts()
	require.Len(t, remaining, 1)
	assert.Equal(t, "second", remaining[0].text)
	assert.Equal(t, "0", first.Style("opacity"))

	sched.Advance(1500 * time.Millisecond)
	assert.Empty(t, doc.alerts())
}

func TestAlerter_Dismiss(t *testing.T) {
	doc := newDoc()
	sched := &manualScheduler{}
	timers := webui.NewTimers(sched)
	alerter := webui.NewAlerter(doc, timers)

	el := alerter.Show("bye", "error")
	alerter.Dismiss(el)

	assert.Empty(t, doc.alerts())
	assert.Equal(t, 0, timers.Len())
	sched.Advance(5 * time.Second)
	assert.Equal(t, "", el.Style("opacity"))
}
