package models

// CalendarEvent is a derived, never persisted rendering unit consumed by the
// calendar UI. Field names follow the FullCalendar event shape.
type CalendarEvent struct {
	Title           string `json:"title"`
	Start           string `json:"start"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	TextColor       string `json:"textColor"`
	AllDay          bool   `json:"allDay"`
	Display         string `json:"display,omitempty"`
}

// Rendering variants for holiday events. Holidays on business days render as
// regular foreground blocks; weekend holidays render as a background wash
// only. Both variants are emitted, differing only in this hint.
const (
	HolidayDisplayForeground = ""
	HolidayDisplayBackground = "background"
)
