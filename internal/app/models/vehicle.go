package models

// Vehicle defines the vehicle model based on the 'vehicles' table
type Vehicle struct {
	ID        int64  `json:"id" db:"id"`
	TicketNum int64  `json:"ticketNum" db:"ticket_num"`
	StatusID  int64  `json:"statusId" db:"status_id"`
	Mobile    string `json:"mobile" db:"mobile"`
	Color     string `json:"color" db:"color"`
	Make      string `json:"make" db:"make"`
	Damages   string `json:"damages" db:"damages"`
	Notes     string `json:"notes" db:"notes"`
}
