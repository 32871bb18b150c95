package constants

import "strings"

// Creator roles accepted by the ?role= filter on activity lists.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

var AdminRoles = []string{RoleSuperAdmin, RoleAdmin}

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AdminRolesList is the human list used in validation messages.
func AdminRolesList() string { return strings.Join(AdminRoles, ", ") }
