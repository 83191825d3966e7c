package models

// Podium defines the podium model based on the 'podiums' table. Podiums are
// soft-deleted; IsDeleted rows stay queryable by raw id but are excluded from
// listings.
type Podium struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	LocationID int64  `json:"locationId" db:"location_id"`
	IsDeleted  bool   `json:"-" db:"is_deleted"`
}
