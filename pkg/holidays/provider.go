package holidays

import (
	"fmt"
	"strings"

	"github.com/rickar/cal/v2"
)

// Calendar is a rule-based Provider for a single jurisdiction. The holiday
// definitions carry both fixed-date and movable rules; the observed (possibly
// Monday-shifted) date is the one that counts for availability.
type Calendar struct {
	jurisdiction string
	definitions  []*cal.Holiday
}

// NewProvider builds the Provider for a jurisdiction code. Only "AR"
// (Argentina) is currently defined; an unknown code is a configuration error.
func NewProvider(jurisdiction string) (*Calendar, error) {
	switch strings.ToUpper(strings.TrimSpace(jurisdiction)) {
	case "AR":
		return &Calendar{jurisdiction: "AR", definitions: argentineHolidays()}, nil
	default:
		return nil, fmt.Errorf("holidays: unknown jurisdiction %q", jurisdiction)
	}
}

// Jurisdiction returns the configured jurisdiction code.
func (c *Calendar) Jurisdiction() string {
	return c.jurisdiction
}

// HolidaysForYears returns every observed public holiday in the inclusive
// year range, mapped to its display name.
func (c *Calendar) HolidaysForYears(from, to int) (Set, error) {
	if len(c.definitions) == 0 {
		return nil, fmt.Errorf("holidays: no holiday definitions for %q", c.jurisdiction)
	}

	set := Set{}
	for year := from; year <= to; year++ {
		for _, def := range c.definitions {
			_, observed := def.Calc(year)
			if observed.IsZero() {
				continue
			}
			set[Key(observed)] = def.Name
		}
	}
	return set, nil
}
