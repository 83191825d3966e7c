package models

// Link-table rows assigning users to podiums, locations and regions.

// UserPodium is one user↔podium assignment row
type UserPodium struct {
	UserID   int64 `json:"userId" db:"user_id"`
	PodiumID int64 `json:"podiumId" db:"podium_id"`
}

// UserLocation is one user↔location assignment row
type UserLocation struct {
	UserID     int64 `json:"userId" db:"user_id"`
	LocationID int64 `json:"locationId" db:"location_id"`
}

// UserRegion is one user↔region assignment row
type UserRegion struct {
	UserID   int64 `json:"userId" db:"user_id"`
	RegionID int64 `json:"regionId" db:"region_id"`
}

// AssignedPodium is a user's podium assignment joined with podium data.
type AssignedPodium struct {
	PodiumID   int64  `json:"podiumId" db:"podium_id"`
	PodiumName string `json:"podiumName" db:"podium_name"`
	LocationID int64  `json:"locationId" db:"location_id"`
}
