package models

// User defines the user model based on the 'users' table. Password is the
// bcrypt hash and is never serialized.
type User struct {
	ID          int64  `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Password    string `json:"-" db:"password"`
	FirstName   string `json:"firstName" db:"first_name"`
	LastName    string `json:"lastName" db:"last_name"`
	Email       string `json:"email" db:"email"`
	Phone       string `json:"phone" db:"phone"`
	TotalParked int64  `json:"totalParked" db:"total_parked"`
	RoleID      int64  `json:"roleId" db:"role_id"`
	PodiumID    *int64 `json:"podiumId" db:"podium_id"`
}
