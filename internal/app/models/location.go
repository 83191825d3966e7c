package models

// Location defines the location model based on the 'locations' table
type Location struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	RegionID int64  `json:"regionId" db:"region_id"`
	Address  string `json:"address" db:"address"`
	City     string `json:"city" db:"city"`
	State    string `json:"state" db:"state"`
	ZipCode  string `json:"zipCode" db:"zip_code"`
	Phone    string `json:"phone" db:"phone"`
}
