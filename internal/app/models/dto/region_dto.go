package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateRegionRequest is the POST /regions body
type CreateRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateRegionRequest is the PATCH /regions/id/:id body
type UpdateRegionRequest struct {
	Name *string `json:"name"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateRegionRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Name != nil {
		data.Set("name", *r.Name)
	}
	return data
}
