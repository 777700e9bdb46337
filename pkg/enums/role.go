package enums

import "fmt"

// Role is the sole authorization key for users.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSales    Role = "sales"
	RoleOperator Role = "operator"
	RoleFleet    Role = "fleet"
	RoleCustoms  Role = "customs"
)

var validRoles = []Role{
	RoleAdmin,
	RoleSales,
	RoleOperator,
	RoleFleet,
	RoleCustoms,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// CanClaimOrders reports whether the role may pick approved orders up.
func (r Role) CanClaimOrders() bool {
	return r == RoleOperator || r == RoleFleet || r == RoleAdmin
}

// ParseRole converts raw input into a Role. The retired "operation" role is
// folded into operator.
func ParseRole(value string) (Role, error) {
	if value == "operation" {
		return RoleOperator, nil
	}
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
