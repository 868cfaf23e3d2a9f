package models

import (
	"encoding/json"
	"time"
)

// AvailabilityStatus is the derived per-agent state: either available today,
// or on leave with a computed return-to-work date. It is recomputed on every
// query and never cached, since it depends on the wall-clock date.
type AvailabilityStatus struct {
	Available  bool
	ReturnDate *time.Time
}

// MarshalJSON emits return_date as a plain date, or null when available.
func (s AvailabilityStatus) MarshalJSON() ([]byte, error) {
	var ret *string
	if s.ReturnDate != nil {
		formatted := s.ReturnDate.Format("2006-01-02")
		ret = &formatted
	}
	return json.Marshal(struct {
		Available  bool    `json:"available"`
		ReturnDate *string `json:"return_date"`
	}{
		Available:  s.Available,
		ReturnDate: ret,
	})
}
