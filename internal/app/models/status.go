package models

// Status defines the lifecycle status model based on the 'status' table
type Status struct {
	ID          int64  `json:"id" db:"id"`
	Description string `json:"status" db:"status"`
}

// Seeded lifecycle status ids in order of vehicle progression.
const (
	StatusCheckedIn  int64 = 1
	StatusStaged     int64 = 2
	StatusParked     int64 = 3
	StatusRequested  int64 = 4
	StatusRetrieved  int64 = 5
	StatusCheckedOut int64 = 6
)
