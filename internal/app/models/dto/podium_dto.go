package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreatePodiumRequest is the POST /podiums body
type CreatePodiumRequest struct {
	Name       string `json:"name" binding:"required"`
	LocationID int64  `json:"locationId" binding:"required,gt=0"`
}

// UpdatePodiumRequest is the PATCH /podiums/id/:id body
type UpdatePodiumRequest struct {
	Name       *string `json:"name"`
	LocationID *int64  `json:"locationId" binding:"omitempty,gt=0"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdatePodiumRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Name != nil {
		data.Set("name", *r.Name)
	}
	if r.LocationID != nil {
		data.Set("locationId", *r.LocationID)
	}
	return data
}
