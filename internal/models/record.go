package models

import "time"

// Record is a dated absence/assignment entry belonging to one agent. Dates
// are inclusive, at day granularity.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AgentID   uint      `gorm:"not null;index" json:"agent_id"`
	Category  string    `gorm:"type:varchar(20);not null" json:"category"`
	StartDate time.Time `gorm:"type:date;not null;index" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Agent Agent `gorm:"foreignKey:AgentID" json:"agent"`
}

// TableName sets the table name in the DB
func (Record) TableName() string {
	return "records"
}

// Record categories. The keys are stored values; labels and colors below are
// a fixed UI contract.
const (
	CategoryVacation       = "vacaciones"
	CategoryFranchise      = "franquicia"
	CategoryPersonalReason = "razon_particular"
	CategoryAssignment     = "comision"
)

// FallbackColor is rendered for categories outside the closed set.
const FallbackColor = "#667eea"

var categoryLabels = map[string]string{
	CategoryVacation:       "Vacaciones",
	CategoryFranchise:      "Franquicia",
	CategoryPersonalReason: "Razón Particular",
	CategoryAssignment:     "Comisión",
}

var categoryColors = map[string]string{
	CategoryVacation:       "#ffc107",
	CategoryFranchise:      "#6f42c1",
	CategoryPersonalReason: "#fd7e14",
	CategoryAssignment:     "#dc3545",
}

// Categories returns the closed set of valid category keys.
func Categories() []string {
	return []string{CategoryVacation, CategoryFranchise, CategoryPersonalReason, CategoryAssignment}
}

// KnownCategory reports whether the key belongs to the closed category set.
func KnownCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}

// CategoryLabel returns the display label for a category key. Unknown keys
// fall back to the raw key so stale data still renders.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// CategoryColor returns the event color for a category key.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return FallbackColor
}

// ContainsDate reports whether the date falls inside the record's inclusive
// [start, end] range, at day granularity.
func (r *Record) ContainsDate(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// IsValid checks the data is consistent
func (r *Record) IsValid() bool {
	if r.AgentID == 0 {
		return false
	}
	if !KnownCategory(r.Category) {
		return false
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return false
	}
	if r.EndDate.Before(r.StartDate) {
		return false
	}
	return true
}
