package models

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDentist      Role = "dentist"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDentist, RoleReceptionist, RolePatient}
}

func (r Role) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

type User struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Email      string        `json:"email" yaml:"email"`
	Role       Role          `json:"role" yaml:"role"`
	Status     AccountStatus `json:"status" yaml:"status"`
	LastActive string        `json:"last_active" yaml:"last_active"`
}
