package dto

import "github.com/parkpilot/parkpilot/internal/pkg/helpers"

// CreateSurveyRequest is the POST /surveys body. Responses past the first
// question are optional; guests often stop early.
type CreateSurveyRequest struct {
	TransactionID int64  `json:"transactionId" binding:"required,gt=0"`
	Q1Response    string `json:"q1Response" binding:"required"`
	Q2Response    string `json:"q2Response"`
	Q3Response    string `json:"q3Response"`
	Q4Response    string `json:"q4Response"`
	Q5Response    string `json:"q5Response"`
	Q6Response    string `json:"q6Response"`
}

// UpdateSurveyRequest is the PATCH /surveys/id/:id body
type UpdateSurveyRequest struct {
	Q1Response *string `json:"q1Response"`
	Q2Response *string `json:"q2Response"`
	Q3Response *string `json:"q3Response"`
	Q4Response *string `json:"q4Response"`
	Q5Response *string `json:"q5Response"`
	Q6Response *string `json:"q6Response"`
}

// UpdateData maps the provided fields into an ordered update set.
func (r *UpdateSurveyRequest) UpdateData() *helpers.UpdateData {
	data := helpers.NewUpdateData()
	if r.Q1Response != nil {
		data.Set("q1Response", *r.Q1Response)
	}
	if r.Q2Response != nil {
		data.Set("q2Response", *r.Q2Response)
	}
	if r.Q3Response != nil {
		data.Set("q3Response", *r.Q3Response)
	}
	if r.Q4Response != nil {
		data.Set("q4Response", *r.Q4Response)
	}
	if r.Q5Response != nil {
		data.Set("q5Response", *r.Q5Response)
	}
	if r.Q6Response != nil {
		data.Set("q6Response", *r.Q6Response)
	}
	return data
}
