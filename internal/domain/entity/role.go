package entity

import "fmt"

// Role is the access level granted to a user. The set is closed: every
// switch over Role must handle all three values.
type Role uint8

const (
	RoleUser Role = iota + 1
	RoleAdmin
	RoleReadOnly
)

// AllRoles returns every valid role in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleReadOnly}
}

// String returns the wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	case RoleReadOnly:
		return "read-only"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleReadOnly:
		return true
	default:
		return false
	}
}

// CanMutate reports whether the role may create, update or delete owned resources.
func (r Role) CanMutate() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	case RoleReadOnly:
		return false
	default:
		return false
	}
}

// BypassesOwnership reports whether the role sees every owner's rows.
func (r Role) BypassesOwnership() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, RoleReadOnly:
		return false
	default:
		return false
	}
}

// ParseRole converts a wire name into a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "admin":
		return RoleAdmin, true
	case "user":
		return RoleUser, true
	case "read-only":
		return RoleReadOnly, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", string(text))
	}
	*r = parsed
	return nil
}
