package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateUserRequest is the POST /users body. RoleID defaults to valet when
// omitted.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	RoleID    int64  `json:"roleId" binding:"omitempty,gt=0"`
	PodiumID  *int64 `json:"podiumId" binding:"omitempty,gt=0"`
}

// UpdateUserRequest is the PATCH /users/id/:id body. Only provided fields
// change; an explicit `"podiumId": null` clears the podium assignment.
type UpdateUserRequest struct {
	FirstName   *string       `json:"firstName"`
	LastName    *string       `json:"lastName"`
	Password    *string       `json:"password"`
	Email       *string       `json:"email" binding:"omitempty,email"`
	Phone       *string       `json:"phone"`
	TotalParked *int64        `json:"totalParked" binding:"omitempty,gte=0"`
	RoleID      *int64        `json:"roleId" binding:"omitempty,gt=0"`
	PodiumID    NullableInt64 `json:"podiumId"`
}

// UpdateData maps the provided fields into an ordered update set. Password is
// excluded: the service hashes it and sets it separately.
func (r *UpdateUserRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.FirstName != nil {
		data.Set("firstName", *r.FirstName)
	}
	if r.LastName != nil {
		data.Set("lastName", *r.LastName)
	}
	if r.Email != nil {
		data.Set("email", *r.Email)
	}
	if r.Phone != nil {
		data.Set("phone", *r.Phone)
	}
	if r.TotalParked != nil {
		data.Set("totalParked", *r.TotalParked)
	}
	if r.RoleID != nil {
		data.Set("roleId", *r.RoleID)
	}
	r.PodiumID.Apply(data, "podiumId")
	return data
}
