package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func TestSQLForPartialUpdate(t *testing.T) {
	data := NewUpdateData()
	data.Set("firstName", "John")
	data.Set("lastName", "Smith")

	setCols, values, err := SQLForPartialUpdate(data, map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
	})

	assert.NoError(t, err)
	assert.Equal(t, `"first_name"=$1, "last_name"=$2`, setCols)
	assert.Equal(t, []interface{}{"John", "Smith"}, values)
}

func TestSQLForPartialUpdateEmpty(t *testing.T) {
	_, _, err := SQLForPartialUpdate(NewUpdateData(), nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, _, err = SQLForPartialUpdate(nil, nil)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestSQLForPartialUpdateVerbatimColumns(t *testing.T) {
	data := NewUpdateData()
	data.Set("color", "Red")
	data.Set("ticketNum", 1001)

	// color has no mapping entry and must pass through verbatim.
	setCols, values, err := SQLForPartialUpdate(data, map[string]string{
		"ticketNum": "ticket_num",
	})

	assert.NoError(t, err)
	assert.Equal(t, `"color"=$1, "ticket_num"=$2`, setCols)
	assert.Equal(t, []interface{}{"Red", 1001}, values)
}

func TestSQLForPartialUpdateNullValue(t *testing.T) {
	data := NewUpdateData()
	data.Set("notes", nil)

	setCols, values, err := SQLForPartialUpdate(data, nil)

	assert.NoError(t, err)
	assert.Equal(t, `"notes"=$1`, setCols)
	assert.Equal(t, []interface{}{nil}, values)
}

func TestSQLForPartialUpdateOrderAndLength(t *testing.T) {
	data := NewUpdateData()
	fields := []string{"a", "b", "c", "d", "e"}
	for i, f := range fields {
		data.Set(f, i)
	}

	setCols, values, err := SQLForPartialUpdate(data, nil)

	assert.NoError(t, err)
	assert.Len(t, values, len(fields))
	assert.Equal(t, `"a"=$1, "b"=$2, "c"=$3, "d"=$4, "e"=$5`, setCols)
	for i := range fields {
		assert.Equal(t, i, values[i])
	}
}

func TestUpdateDataSetTwiceKeepsPosition(t *testing.T) {
	data := NewUpdateData()
	data.Set("make", "Toyota")
	data.Set("color", "Red")
	data.Set("make", "Honda")

	setCols, values, err := SQLForPartialUpdate(data, nil)

	assert.NoError(t, err)
	assert.Equal(t, `"make"=$1, "color"=$2`, setCols)
	assert.Equal(t, []interface{}{"Honda", "Red"}, values)
}
