package models

import "time"

// Transaction is one lifecycle event log row: which valet handled which
// vehicle at which podium/location, and the lifecycle status it reached.
type Transaction struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	VehicleID       int64     `json:"vehicleId" db:"vehicle_id"`
	PodiumID        int64     `json:"podiumId" db:"podium_id"`
	LocationID      int64     `json:"locationId" db:"location_id"`
	StatusID        int64     `json:"statusId" db:"status_id"`
	TransactionTime time.Time `json:"transactionTime" db:"transaction_time"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
