package models

import "time"

type Role string

const (
	RoleOperator string = "operator"
	RoleAdmin    string = "admin"
)

// User is a login identity for the data-entry UI. Operators can create and
// edit; only admins can delete or inspect diagnostics.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:'operator'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin checks whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SetRole sets the role
func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

// TableName sets the table name in the DB
func (User) TableName() string {
	return "users"
}
