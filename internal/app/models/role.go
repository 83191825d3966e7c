package models

// Role defines the role model based on the 'roles' table. Roles are
// soft-deleted so historical users keep a resolvable role id.
type Role struct {
	ID        int64  `json:"id" db:"id"`
	Role      string `json:"role" db:"role"`
	IsDeleted bool   `json:"-" db:"is_deleted"`
}

// Seeded role ids, ordered by privilege. Guards compare numerically.
const (
	RoleValet      int64 = 1
	RoleSupervisor int64 = 2
	RoleManager    int64 = 3
	RoleAdmin      int64 = 4
)
