package models

import "time"

// Survey holds a guest's six-question response for a finished transaction.
type Survey struct {
	ID            int64     `json:"id" db:"id"`
	TransactionID int64     `json:"transactionId" db:"transaction_id"`
	Q1Response    string    `json:"q1Response" db:"q1_response"`
	Q2Response    string    `json:"q2Response" db:"q2_response"`
	Q3Response    string    `json:"q3Response" db:"q3_response"`
	Q4Response    string    `json:"q4Response" db:"q4_response"`
	Q5Response    string    `json:"q5Response" db:"q5_response"`
	Q6Response    string    `json:"q6Response" db:"q6_response"`
	SubmittedAt   time.Time `json:"submittedAt" db:"submitted_at"`
}
