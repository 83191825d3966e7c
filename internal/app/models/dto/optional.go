package dto

import (
	"encoding/json"

	"github.com/parkpilot/parkpilot/internal/pkg/helpers"
)

// NullableInt64 is a PATCH body field over a nullable column. Plain pointer
// fields cannot tell `"podiumId": null` apart from an absent key, so this
// type records presence and null separately: absent leaves the column alone,
// null clears it, a number sets it.
type NullableInt64 struct {
	Present bool
	Valid   bool
	Value   int64
}

// UnmarshalJSON runs only when the key appears in the body, including for an
// explicit null.
func (n *NullableInt64) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Apply records the field on data: a null assignment when the body carried
// null, the value otherwise, nothing when the key was absent.
func (n NullableInt64) Apply(data *helpers.UpdateData, field string) {
	if !n.Present {
		return
	}
	if n.Valid {
		data.Set(field, n.Value)
		return
	}
	data.Set(field, nil)
}
