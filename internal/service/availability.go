package service

import (
	"fmt"
	"time"

	"github.com/hidr4lisk/experimento/internal/apperr"
	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/pkg/dateutil"
	"github.com/hidr4lisk/experimento/pkg/holidays"
)

// AvailabilityService computes whether an agent is available today and, if
// not, the next business day after the latest active absence ends. The result
// is a pure function of today's date and the active-record set and must be
// recomputed per call.
type AvailabilityService struct {
	provider holidays.Provider
}

func NewAvailabilityService(provider holidays.Provider) *AvailabilityService {
	return &AvailabilityService{provider: provider}
}

// Status evaluates the active records (ranges containing today, filtered by
// the caller). No active records means available; future-scheduled leave does
// not affect current availability.
func (s *AvailabilityService) Status(today time.Time, activeRecords []models.Record) (models.AvailabilityStatus, error) {
	if len(activeRecords) == 0 {
		return models.AvailabilityStatus{Available: true}, nil
	}

	lastEnd := activeRecords[0].EndDate
	for _, rec := range activeRecords[1:] {
		if rec.EndDate.After(lastEnd) {
			lastEnd = rec.EndDate
		}
	}

	returnDate, err := s.nextBusinessDay(dateutil.StartOfDay(lastEnd))
	if err != nil {
		return models.AvailabilityStatus{}, err
	}
	return models.AvailabilityStatus{Available: false, ReturnDate: &returnDate}, nil
}

// nextBusinessDay finds the earliest date strictly after the given day that
// is a weekday and not a public holiday. The holiday window always covers the
// candidate's year plus the next, so a December-to-January scan does not need
// a fresh query per day; if a scan still outruns the window, it is re-queried.
func (s *AvailabilityService) nextBusinessDay(after time.Time) (time.Time, error) {
	candidate := dateutil.NextDay(after)

	windowEnd := candidate.Year() + 1
	set, err := s.provider.HolidaysForYears(candidate.Year(), windowEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperr.ErrHolidayProvider, err)
	}

	for {
		if candidate.Year() > windowEnd {
			windowEnd = candidate.Year() + 1
			set, err = s.provider.HolidaysForYears(candidate.Year(), windowEnd)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %v", apperr.ErrHolidayProvider, err)
			}
		}
		if dateutil.IsWeekday(candidate) && !set.Contains(candidate) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
}
