package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateLocationRequest is the POST /locations body
type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	RegionID int64  `json:"regionId" binding:"required,gt=0"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required"`
	Phone    string `json:"phone"`
}

// UpdateLocationRequest is the PATCH /locations/id/:id body
type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	RegionID *int64  `json:"regionId" binding:"omitempty,gt=0"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zipCode"`
	Phone    *string `json:"phone"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateLocationRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Name != nil {
		data.Set("name", *r.Name)
	}
	if r.RegionID != nil {
		data.Set("regionId", *r.RegionID)
	}
	if r.Address != nil {
		data.Set("address", *r.Address)
	}
	if r.City != nil {
		data.Set("city", *r.City)
	}
	if r.State != nil {
		data.Set("state", *r.State)
	}
	if r.ZipCode != nil {
		data.Set("zipCode", *r.ZipCode)
	}
	if r.Phone != nil {
		data.Set("phone", *r.Phone)
	}
	return data
}
