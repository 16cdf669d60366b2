package entity

import "time"

// Role of a User. Exactly one per account, fixed at registration.
type Role string

// Valid roles.
const (
	RoleAdmin      Role = "ADMIN"
	RoleArtisan    Role = "ARTISAN"
	RoleBuyer      Role = "BUYER"
	RoleConsultant Role = "CONSULTANT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArtisan, RoleBuyer, RoleConsultant:
		return true
	}
	return false
}

// RegistrableRoles are the roles a visitor may pick on the public
// registration form. ADMIN accounts are created only via cmd/seed.
var RegistrableRoles = []Role{RoleArtisan, RoleBuyer, RoleConsultant}

// User is a marketplace account. Email is unique case-insensitively at
// write time; PasswordHash is bcrypt, never plaintext past the auth use case.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	IsStaff      bool
	DateJoined   time.Time
}
