package helpers

import (
	"fmt"
	"strings"

	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

// UpdateData is an insertion-ordered set of field/value pairs for a partial
// update. A nil value is a real assignment (SET col = NULL); a field that was
// never Set is left untouched by the resulting statement.
type UpdateData struct {
	fields []string
	values map[string]interface{}
}

// NewUpdateData creates an empty UpdateData.
func NewUpdateData() *UpdateData {
	return &UpdateData{values: make(map[string]interface{})}
}

// Set records a field assignment. Setting the same field twice overwrites the
// value but keeps the original position.
func (u *UpdateData) Set(field string, value interface{}) *UpdateData {
	if u.values == nil {
		u.values = make(map[string]interface{})
	}
	if _, ok := u.values[field]; !ok {
		u.fields = append(u.fields, field)
	}
	u.values[field] = value
	return u
}

// Len returns the number of fields recorded so far.
func (u *UpdateData) Len() int {
	return len(u.fields)
}

// SQLForPartialUpdate turns an UpdateData and a field-name → column-name
// dictionary into the SET fragment of an UPDATE statement plus the bound
// values, positioned in the order the fields were recorded:
//
//	setCols: `"first_name"=$1, "total_parked"=$2`
//	values:  ["John", 12]
//
// A field missing from fieldToColumn uses the field name verbatim as the
// column name. Column identifiers are always double-quoted and values are
// always returned as bind parameters, never interpolated; callers append
// their identity predicate at $len(values)+1.
//
// Returns apperrors.ErrBadRequest (wrapped) when data is empty: a partial
// update must change at least one column, and no statement may be executed.
func SQLForPartialUpdate(data *UpdateData, fieldToColumn map[string]string) (string, []interface{}, error) {
	if data == nil || data.Len() == 0 {
		return "", nil, apperrors.NewBadRequestError("no fields to update")
	}

	cols := make([]string, 0, data.Len())
	values := make([]interface{}, 0, data.Len())
	for i, field := range data.fields {
		column, ok := fieldToColumn[field]
		if !ok {
			column = field
		}
		cols = append(cols, fmt.Sprintf("%q=$%d", column, i+1))
		values = append(values, data.values[field])
	}

	return strings.Join(cols, ", "), values, nil
}
