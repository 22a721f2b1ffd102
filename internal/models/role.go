package models

import (
	"fmt"
	"strings"
)

// Role is a single capability bit. Roles are stored in user_roles as their
// string names but travel through the service as a RoleSet.
type Role uint8

const (
	RoleDealer Role = 1 << iota
	RoleSuperadmin
)

var roleNames = map[Role]string{
	RoleDealer:     "dealer",
	RoleSuperadmin: "superadmin",
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown"
}

// ParseRole converts a stored role name to the enum.
func ParseRole(s string) (Role, error) {
	for r, n := range roleNames {
		if strings.EqualFold(n, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid role: %q", s)
}

// RoleSet is a bitset of roles held by one user.
type RoleSet uint8

func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s = s.With(r)
	}
	return s
}

func (s RoleSet) Has(r Role) bool     { return s&RoleSet(r) != 0 }
func (s RoleSet) With(r Role) RoleSet { return s | RoleSet(r) }
func (s RoleSet) IsDealer() bool      { return s.Has(RoleDealer) }
func (s RoleSet) IsSuperadmin() bool  { return s.Has(RoleSuperadmin) }

// Strings lists the role names in a stable order.
func (s RoleSet) Strings() []string {
	out := []string{}
	for _, r := range []Role{RoleDealer, RoleSuperadmin} {
		if s.Has(r) {
			out = append(out, r.String())
		}
	}
	return out
}

// ParseRoleSet builds a set from stored role names; unknown names are an error.
func ParseRoleSet(names []string) (RoleSet, error) {
	var s RoleSet
	for _, n := range names {
		r, err := ParseRole(n)
		if err != nil {
			return 0, err
		}
		s = s.With(r)
	}
	return s, nil
}
