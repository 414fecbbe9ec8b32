package tui

import (
	"fmt"

	"github.com/MKhiriev/go-exchange-admin/models"
)

// EventView renders admin events on the shared console. It implements
// workers.EventRenderer.
type EventView struct {
	console *Console
}

// NewEventView binds the view to console.
func NewEventView(console *Console) *EventView {
	return &EventView{console: console}
}

// RenderEvent prints one event line.
func (v *EventView) RenderEvent(event models.AdminEvent) {
	v.console.Println(eventStyle.Render(formatEvent(event)))
}

// RenderStreamEnd prints why no more events will arrive.
func (v *EventView) RenderStreamEnd(err error) {
	if err == nil {
		v.console.Println(eventStyle.Render("[event] stream closed by gateway"))
		return
	}
	v.console.Error("[event] stream ended: " + humanizeError(err))
}

func formatEvent(event models.AdminEvent) string {
	if event.CommandResult == nil {
		return fmt.Sprintf("[event #%d] (no command result)", event.Index)
	}

	r := event.CommandResult
	line := fmt.Sprintf("[event #%d] uid=%d %s", event.Index, r.UID, r.ResultCode)
	if r.Message != "" {
		line += ": " + r.Message
	}
	return line
}
