package models

import "time"

// PodiumActivity is one row of the reporting join across transactions,
// vehicles, users, locations and podiums. Column aliases prefix the field
// with its source table so the flat row stays unambiguous.
type PodiumActivity struct {
	TransactionID         int64     `json:"transactionId"`
	TransactionUserID     int64     `json:"transactionUserId"`
	TransactionVehicleID  int64     `json:"transactionVehicleId"`
	TransactionPodiumID   int64     `json:"transactionPodiumId"`
	TransactionLocationID int64     `json:"transactionLocationId"`
	TransactionStatusID   int64     `json:"transactionStatusId"`
	TransactionTime       time.Time `json:"transactionTime"`
	TransactionUpdatedAt  time.Time `json:"transactionUpdatedAt"`

	VehicleID        int64  `json:"vehicleId"`
	VehicleTicketNum int64  `json:"vehicleTicketNum"`
	VehicleStatusID  int64  `json:"vehicleStatusId"`
	VehicleMobile    string `json:"vehicleMobile"`
	VehicleColor     string `json:"vehicleColor"`
	VehicleMake      string `json:"vehicleMake"`
	VehicleDamages   string `json:"vehicleDamages"`
	VehicleNotes     string `json:"vehicleNotes"`

	UserID          int64  `json:"userId"`
	UserUsername    string `json:"userUsername"`
	UserFirstName   string `json:"userFirstName"`
	UserLastName    string `json:"userLastName"`
	UserEmail       string `json:"userEmail"`
	UserPhone       string `json:"userPhone"`
	UserTotalParked int64  `json:"userTotalParked"`
	UserRoleID      int64  `json:"userRoleId"`
	UserPodiumID    *int64 `json:"userPodiumId"`

	LocationID       int64  `json:"locationId"`
	LocationName     string `json:"locationName"`
	LocationRegionID int64  `json:"locationRegionId"`
	LocationAddress  string `json:"locationAddress"`
	LocationCity     string `json:"locationCity"`
	LocationState    string `json:"locationState"`
	LocationZipCode  string `json:"locationZipCode"`
	LocationPhone    string `json:"locationPhone"`

	PodiumID         int64  `json:"podiumId"`
	PodiumName       string `json:"podiumName"`
	PodiumLocationID int64  `json:"podiumLocationId"`
}

// TransactionDetail is PodiumActivity plus the resolved status label.
type TransactionDetail struct {
	PodiumActivity
	StatusID          int64  `json:"statusId"`
	StatusDescription string `json:"statusDescription"`
}

// DashboardStats is the per-status transaction count rollup for today.
type DashboardStats struct {
	TotalCount      int64 `json:"totalCount"`
	CheckedInCount  int64 `json:"checkedInCount"`
	StagedCount     int64 `json:"stagedCount"`
	ParkedCount     int64 `json:"parkedCount"`
	RequestedCount  int64 `json:"requestedCount"`
	RetrievedCount  int64 `json:"retrievedCount"`
	CheckedOutCount int64 `json:"checkedOutCount"`
}
