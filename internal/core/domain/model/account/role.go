package account

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Role is an operational capability of a profile. A profile holds one or
// more roles; they are not mutually exclusive.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleShipper (dador de carga) may create shipments and decide on quotes.
	RoleShipper

	// RoleCarrier (operador logístico) may submit quotes and run trips.
	RoleCarrier

	// RoleBroker combines shipper- and carrier-facing capabilities.
	RoleBroker
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleShipper: "dador",
		RoleCarrier: "operador",
		RoleBroker:  "broker",
	}
}

// Validate checks that the Role holds one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical lowercase name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a canonical role name case-insensitively.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// CanShip reports whether the role may create shipments and decide on quotes.
func (r Role) CanShip() bool {
	return r == RoleShipper || r == RoleBroker
}

// CanCarry reports whether the role may submit quotes and run trips.
func (r Role) CanCarry() bool {
	return r == RoleCarrier || r == RoleBroker
}

// ParseRoles parses a comma-joined role list as stored by the legacy data
// model ("dador,operador"). Empty segments are skipped; duplicates collapse.
func ParseRoles(s string) ([]Role, error) {
	var roles []Role
	seen := make(map[Role]bool)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		role, err := RoleFromString(part)
		if err != nil {
			return nil, err
		}
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}

	return roles, nil
}

// JoinRoles serializes roles into the canonical comma-joined form.
func JoinRoles(roles []Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	return strings.Join(names, ",")
}
