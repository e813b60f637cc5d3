package models

import (
	"strings"

	"gorm.io/gorm"
)

// Role is the application-level role of a user.
type Role string

const (
	RoleUser         Role = "user"
	RolePendingAdmin Role = "pending_admin"
	RoleAdmin        Role = "admin"
)

// roleTransitions is the guarded transition table for roles. A profile's
// role may only move along these edges: a customer can request admin
// access, and a pending request can be approved or rejected.
var roleTransitions = map[Role][]Role{
	RoleUser:         {RolePendingAdmin},
	RolePendingAdmin: {RoleAdmin, RoleUser},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePendingAdmin, RoleAdmin:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition r -> next is permitted.
func (r Role) CanTransitionTo(next Role) bool {
	for _, allowed := range roleTransitions[r] {
		if allowed == next {
			return true
		}
	}
	return false
}

// User is the merged identity + profile record: the authentication
// credential (email, password hash) together with the business profile
// (name fields, role).
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	FirstName  string `json:"first_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Role       Role   `json:"role" gorm:"type:varchar(20);default:user"`
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}

// DisplayName returns the trimmed concatenation of the name fields,
// falling back to the email local-part when both are empty.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}
