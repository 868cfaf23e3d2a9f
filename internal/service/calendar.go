package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/hidr4lisk/experimento/internal/apperr"
	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/pkg/dateutil"
	"github.com/hidr4lisk/experimento/pkg/holidays"
)

// Neutral triple used for holiday events, regardless of category colors.
const (
	holidayBackgroundColor = "#e9ecef"
	holidayBorderColor     = "#ced4da"
	holidayTextColor       = "#495057"
)

const absenceTextColor = "#ffffff"

// CalendarService materializes absence records and public holidays into
// calendar events. Events are derived per request and never stored.
type CalendarService struct {
	provider holidays.Provider
}

func NewCalendarService(provider holidays.Provider) *CalendarService {
	return &CalendarService{provider: provider}
}

// EventsForRecords expands a set of records into calendar events: one
// holiday event per holiday date in the covered year span, then one
// business-day event per weekday inside each record's inclusive range.
// fallbackYear bounds the holiday span when there are no records.
func (s *CalendarService) EventsForRecords(records []models.Record, fallbackYear int) ([]models.CalendarEvent, error) {
	fromYear, toYear := yearSpan(records, fallbackYear)

	set, err := s.provider.HolidaysForYears(fromYear, toYear)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrHolidayProvider, err)
	}

	events := make([]models.CalendarEvent, 0, len(set)+len(records))
	for _, key := range sortedDateKeys(set) {
		date, err := time.Parse(holidays.DateKey, key)
		if err != nil {
			continue
		}
		events = append(events, holidayEvent(date, set[key]))
	}

	for i := range records {
		events = append(events, recordEvents(&records[i])...)
	}
	return events, nil
}

// EventsForRecord materializes a single record.
func (s *CalendarService) EventsForRecord(record *models.Record) ([]models.CalendarEvent, error) {
	return s.EventsForRecords([]models.Record{*record}, record.StartDate.Year())
}

// yearSpan returns the inclusive year range covering every record's start and
// end dates, or [fallbackYear, fallbackYear] when there are none.
func yearSpan(records []models.Record, fallbackYear int) (int, int) {
	if len(records) == 0 {
		return fallbackYear, fallbackYear
	}
	from, to := records[0].StartDate.Year(), records[0].EndDate.Year()
	for _, rec := range records[1:] {
		if y := rec.StartDate.Year(); y < from {
			from = y
		}
		if y := rec.EndDate.Year(); y > to {
			to = y
		}
	}
	return from, to
}

func sortedDateKeys(set holidays.Set) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func holidayEvent(date time.Time, name string) models.CalendarEvent {
	display := models.HolidayDisplayForeground
	if dateutil.IsWeekend(date) {
		display = models.HolidayDisplayBackground
	}
	return models.CalendarEvent{
		Title:           "Holiday: " + name,
		Start:           date.Format(holidays.DateKey),
		BackgroundColor: holidayBackgroundColor,
		BorderColor:     holidayBorderColor,
		TextColor:       holidayTextColor,
		AllDay:          true,
		Display:         display,
	}
}

// recordEvents walks the record's inclusive range emitting one event per
// business day. Weekend days are silently skipped: absences never render on
// Saturday or Sunday.
func recordEvents(record *models.Record) []models.CalendarEvent {
	label := models.CategoryLabel(record.Category)
	color := models.CategoryColor(record.Category)

	var events []models.CalendarEvent
	start := dateutil.StartOfDay(record.StartDate)
	end := dateutil.StartOfDay(record.EndDate)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if !dateutil.IsWeekday(date) {
			continue
		}
		events = append(events, models.CalendarEvent{
			Title:           label,
			Start:           date.Format(holidays.DateKey),
			BackgroundColor: color,
			BorderColor:     color,
			TextColor:       absenceTextColor,
			AllDay:          true,
		})
	}
	return events
}
