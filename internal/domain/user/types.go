package user

import "strings"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func NewRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }
func (r Role) IsAdmin() bool  { return r == RoleAdmin }

// SubType is the subscription mode. It decides how much of a slot a booking occupies.
type SubType string

const (
	SubTypeShared SubType = "SHARED"
	SubTypeSingle SubType = "SINGLE"
)

func NewSubType(s string) (SubType, error) {
	switch st := SubType(strings.ToUpper(strings.TrimSpace(s))); st {
	case SubTypeShared, SubTypeSingle:
		return st, nil
	default:
		return "", ErrInvalidSubType
	}
}

func (s SubType) String() string { return string(s) }
