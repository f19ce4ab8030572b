package models

import "time"

type Role string

const (
	RoleLaborer  Role = "laborer"
	RoleProvider Role = "provider"
)

func (r Role) Valid() bool {
	return r == RoleLaborer || r == RoleProvider
}

// DefaultRating is assigned to every new user; ratings are never updated.
const DefaultRating = 5

// User is a registered laborer or job provider. Contact is unique per role.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Contact    string    `json:"contact"`
	Role       Role      `json:"role"`
	Profession string    `json:"profession,omitempty"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}
