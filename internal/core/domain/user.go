package domain

import (
	"errors"
	"time"
)

// Role classifies a user and determines query and API privileges.
type Role string

const (
	RoleCommunity  Role = "community"
	RoleResearcher Role = "researcher"
	RoleGovernment Role = "government"
	RoleAdmin      Role = "admin"
)

var ErrValidation = errors.New("validation failed")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAuthRequired = errors.New("authentication required")
var ErrForbidden = errors.New("insufficient permissions")

// ParseRole returns the closed-set role for s. Unknown values report ok=false;
// callers that accept external input fall back to RoleCommunity so that an
// unrecognised role never grants privileges and never fails a role check.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCommunity, RoleResearcher, RoleGovernment, RoleAdmin:
		return Role(s), true
	}
	return RoleCommunity, false
}

// CanViewAll reports whether the role may query readings of every user.
func (r Role) CanViewAll() bool {
	switch r {
	case RoleResearcher, RoleGovernment, RoleAdmin:
		return true
	}
	return false
}

// CanEditAll reports whether the role may modify readings of every user.
func (r Role) CanEditAll() bool {
	switch r {
	case RoleGovernment, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User models a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	Telephone    string    `json:"telephone,omitempty"`
	PasswordHash string    `json:"-"`
	Organization string    `json:"organization,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
