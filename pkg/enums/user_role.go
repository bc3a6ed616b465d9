package enums

import "fmt"

// UserRole describes the account roles the backend recognizes.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

var validUserRoles = []UserRole{
	UserRoleAdmin,
	UserRoleUser,
}

// IsValid reports whether the value matches the canonical user role enum.
func (u UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserRole converts the raw string to UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}

// UserRoleOrDefault maps unknown raw roles to the plain user role, the
// default the legacy payloads assume when the field is absent.
func UserRoleOrDefault(value string) UserRole {
	if role, err := ParseUserRole(value); err == nil {
		return role
	}
	return UserRoleUser
}
