package dto

// AssignPodiumRequest pairs a user with a podium (POST/DELETE /user-podiums)
type AssignPodiumRequest struct {
	UserID   int64 `json:"userId" binding:"required,gt=0"`
	PodiumID int64 `json:"podiumId" binding:"required,gt=0"`
}

// AssignLocationRequest pairs a user with a location (POST/DELETE /user-locations)
type AssignLocationRequest struct {
	UserID     int64 `json:"userId" binding:"required,gt=0"`
	LocationID int64 `json:"locationId" binding:"required,gt=0"`
}

// AssignRegionRequest pairs a user with a region (POST/DELETE /user-regions)
type AssignRegionRequest struct {
	UserID   int64 `json:"userId" binding:"required,gt=0"`
	RegionID int64 `json:"regionId" binding:"required,gt=0"`
}
