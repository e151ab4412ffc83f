package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleResponder Role = "RESPONDER"
	RoleAnalyst   Role = "ANALYST"
)

// DefaultRole is assigned when registration omits a role.
const DefaultRole = RoleResponder

// roleOverrides maps a role to the additional roles it satisfies.
// Every role satisfies itself; ADMIN satisfies everything.
var roleOverrides = map[Role]map[Role]bool{
	RoleAdmin: {
		RoleResponder: true,
		RoleAnalyst:   true,
	},
}

// ParseRole validates a raw role string. Unknown roles are rejected so an
// account can never be created with an unrecognized role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleResponder, RoleAnalyst:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// Satisfies reports whether r meets the required role, either directly or
// through an override rule.
func (r Role) Satisfies(required Role) bool {
	if r == required {
		return true
	}
	return roleOverrides[r][required]
}

// User is the domain model for platform accounts. Admins, responders and
// analysts live in the same table and differ only by role.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
