package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/mocks"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func TestLocationCreate(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/locations",
		`{"name":"Grand Hotel","regionId":1,"address":"100 Main St","city":"Denver","state":"CO","zipCode":"80202"}`)

	svc := new(mocks.LocationManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateLocationRequest")).
		Return(&models.Location{ID: 5, Name: "Grand Hotel", RegionID: 1, City: "Denver"}, nil)

	controllers.NewLocationController(svc).Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Location models.Location `json:"location"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Grand Hotel", resp.Location.Name)
}

func TestLocationSearchByNameNoMatch(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/locations/name/zzz", "")
	ctx.Params = gin.Params{{Key: "name", Value: "zzz"}}

	svc := new(mocks.LocationManager)
	svc.On("SearchByName", mock.Anything, "zzz").
		Return(nil, apperrors.NewNotFoundError("No locations matching name: zzz"))

	controllers.NewLocationController(svc).SearchByName(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No locations matching name: zzz", errorMessage(t, w))
}

func TestLocationUpdateEmptyBody(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPatch, "/api/v1/locations/id/5", "")
	ctx.Params = gin.Params{{Key: "id", Value: "5"}}

	svc := new(mocks.LocationManager)
	svc.On("Update", mock.Anything, int64(5), mock.AnythingOfType("*dto.UpdateLocationRequest")).
		Return(nil, apperrors.NewBadRequestError("no fields to update"))

	controllers.NewLocationController(svc).Update(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", errorMessage(t, w))
}

func TestLocationUpdate(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPatch, "/api/v1/locations/id/5", `{"phone":"555-0199"}`)
	ctx.Params = gin.Params{{Key: "id", Value: "5"}}

	svc := new(mocks.LocationManager)
	svc.On("Update", mock.Anything, int64(5), mock.AnythingOfType("*dto.UpdateLocationRequest")).
		Return(&models.Location{ID: 5, Name: "Grand Hotel", Phone: "555-0199"}, nil)

	controllers.NewLocationController(svc).Update(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Location models.Location `json:"location"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "555-0199", resp.Location.Phone)
}
