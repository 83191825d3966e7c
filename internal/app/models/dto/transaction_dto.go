package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateTransactionRequest is the POST /transactions body. StatusID defaults
// to checked-in when omitted.
type CreateTransactionRequest struct {
	UserID     int64 `json:"userId" binding:"required,gt=0"`
	VehicleID  int64 `json:"vehicleId" binding:"required,gt=0"`
	PodiumID   int64 `json:"podiumId" binding:"required,gt=0"`
	LocationID int64 `json:"locationId" binding:"required,gt=0"`
	StatusID   int64 `json:"statusId" binding:"omitempty,gt=0"`
}

// UpdateTransactionRequest is the PATCH /transactions/id/:id body
type UpdateTransactionRequest struct {
	UserID     *int64 `json:"userId" binding:"omitempty,gt=0"`
	VehicleID  *int64 `json:"vehicleId" binding:"omitempty,gt=0"`
	PodiumID   *int64 `json:"podiumId" binding:"omitempty,gt=0"`
	LocationID *int64 `json:"locationId" binding:"omitempty,gt=0"`
	StatusID   *int64 `json:"statusId" binding:"omitempty,gt=0"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateTransactionRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.UserID != nil {
		data.Set("userId", *r.UserID)
	}
	if r.VehicleID != nil {
		data.Set("vehicleId", *r.VehicleID)
	}
	if r.PodiumID != nil {
		data.Set("podiumId", *r.PodiumID)
	}
	if r.LocationID != nil {
		data.Set("locationId", *r.LocationID)
	}
	if r.StatusID != nil {
		data.Set("statusId", *r.StatusID)
	}
	return data
}
