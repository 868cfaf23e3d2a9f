package models

import "time"

// Agent is an employee whose absences are tracked.
type Agent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt time.Time `json:"created_at"`

	// Records are owned by the agent: deleting the agent deletes them.
	Records []Record `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName sets the table name in the DB
func (Agent) TableName() string {
	return "agents"
}

// IsValid checks the data is consistent
func (a *Agent) IsValid() bool {
	return a.Name != ""
}
