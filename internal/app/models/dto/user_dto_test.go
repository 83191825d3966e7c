package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/pkg/helpers"
)

func TestUpdateUserPodiumNullClearsAssignment(t *testing.T) {
	var req dto.UpdateUserRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"podiumId": null}`), &req))

	data := req.UpdateData()
	assert.Equal(t, 1, data.Len())

	setCols, values, err := helpers.SQLForPartialUpdate(data, map[string]string{"podiumId": "podium_id"})
	assert.NoError(t, err)
	assert.Equal(t, `"podium_id"=$1`, setCols)
	assert.Equal(t, []interface{}{nil}, values)
}

func TestUpdateUserPodiumAbsentLeavesColumnAlone(t *testing.T) {
	var req dto.UpdateUserRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"firstName": "John"}`), &req))

	data := req.UpdateData()
	assert.Equal(t, 1, data.Len())

	setCols, values, err := helpers.SQLForPartialUpdate(data, map[string]string{"firstName": "first_name"})
	assert.NoError(t, err)
	assert.Equal(t, `"first_name"=$1`, setCols)
	assert.Equal(t, []interface{}{"John"}, values)
}

func TestUpdateUserPodiumValueSetsColumn(t *testing.T) {
	var req dto.UpdateUserRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"podiumId": 3}`), &req))

	assert.True(t, req.PodiumID.Present)
	assert.True(t, req.PodiumID.Valid)
	assert.Equal(t, int64(3), req.PodiumID.Value)

	_, values, err := helpers.SQLForPartialUpdate(req.UpdateData(), map[string]string{"podiumId": "podium_id"})
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{int64(3)}, values)
}
