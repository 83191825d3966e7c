package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateRoleRequest is the POST /roles body
type CreateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRoleRequest is the PATCH /roles/id/:id body
type UpdateRoleRequest struct {
	Role *string `json:"role"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateRoleRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Role != nil {
		data.Set("role", *r.Role)
	}
	return data
}

// CreateStatusRequest is the POST /statuses body
type CreateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusRequest is the PATCH /statuses/id/:id body
type UpdateStatusRequest struct {
	Status *string `json:"status"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateStatusRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Status != nil {
		data.Set("status", *r.Status)
	}
	return data
}
