package dto

// LoginRequest carries credentials for POST /auth/token
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries a new user registration. RoleID defaults to valet
// when omitted.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	RoleID    int64  `json:"roleId" binding:"omitempty,gt=0"`
	PodiumID  *int64 `json:"podiumId" binding:"omitempty,gt=0"`
}

// TokenResponse is the login response body
type TokenResponse struct {
	Token string `json:"token"`
}
