package models

// Region defines the region model based on the 'regions' table
type Region struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
