package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateVehicleRequest is the POST /vehicles body
type CreateVehicleRequest struct {
	TicketNum int64  `json:"ticketNum" binding:"required,gt=0"`
	StatusID  int64  `json:"statusId" binding:"required,gt=0"`
	Mobile    string `json:"mobile" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Make      string `json:"make" binding:"required"`
	Damages   string `json:"damages"`
	Notes     string `json:"notes"`
}

// UpdateVehicleRequest is the PATCH /vehicles/id/:id body
type UpdateVehicleRequest struct {
	TicketNum *int64  `json:"ticketNum" binding:"omitempty,gt=0"`
	StatusID  *int64  `json:"statusId" binding:"omitempty,gt=0"`
	Mobile    *string `json:"mobile"`
	Color     *string `json:"color"`
	Make      *string `json:"make"`
	Damages   *string `json:"damages"`
	Notes     *string `json:"notes"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateVehicleRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.TicketNum != nil {
		data.Set("ticketNum", *r.TicketNum)
	}
	if r.StatusID != nil {
		data.Set("statusId", *r.StatusID)
	}
	if r.Mobile != nil {
		data.Set("mobile", *r.Mobile)
	}
	if r.Color != nil {
		data.Set("color", *r.Color)
	}
	if r.Make != nil {
		data.Set("make", *r.Make)
	}
	if r.Damages != nil {
		data.Set("damages", *r.Damages)
	}
	if r.Notes != nil {
		data.Set("notes", *r.Notes)
	}
	return data
}
