package kernel

import (
	"meddelivery/internal/pkg/errs"
)

// Role is the kind of party acting on the marketplace.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RolePharmacy
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RolePharmacy: "pharmacy",
		RoleDriver:   "driver",
	}
}

// ParseRole maps the wire name ("customer", "pharmacy", "driver") to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

func (r Role) String() string {
	if name, ok := getRoleStrings()[r]; ok {
		return name
	}
	return getRoleStrings()[RoleUnknown]
}

func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RolePharmacy, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}
