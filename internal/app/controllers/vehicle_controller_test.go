package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/mocks"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	ctx.Request = req

	return ctx, w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Message
}

func TestVehicleCreate(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/vehicles",
		`{"ticketNum":101,"statusId":1,"mobile":"555-0100","color":"blue","make":"Honda"}`)

	svc := new(mocks.VehicleManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateVehicleRequest")).
		Return(&models.Vehicle{ID: 1, TicketNum: 101, StatusID: 1, Mobile: "555-0100", Color: "blue", Make: "Honda"}, nil)

	controllers.NewVehicleController(svc).Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Vehicle models.Vehicle `json:"vehicle"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Vehicle.ID)
	assert.Equal(t, "555-0100", resp.Vehicle.Mobile)

	svc.AssertExpectations(t)
}

func TestVehicleCreateDuplicateMobile(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/vehicles",
		`{"ticketNum":101,"statusId":1,"mobile":"555-0100","color":"blue","make":"Honda"}`)

	svc := new(mocks.VehicleManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateVehicleRequest")).
		Return(nil, apperrors.NewDuplicateError("Vehicle mobile: 555-0100 is already checked in"))

	controllers.NewVehicleController(svc).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Vehicle mobile: 555-0100 is already checked in", errorMessage(t, w))
}

func TestVehicleCreateRejectsMissingFields(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/vehicles", `{"ticketNum":101}`)

	svc := new(mocks.VehicleManager)
	controllers.NewVehicleController(svc).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleGetByIDNotFound(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/vehicles/id/999", "")
	ctx.Params = gin.Params{{Key: "id", Value: "999"}}

	svc := new(mocks.VehicleManager)
	svc.On("GetByID", mock.Anything, int64(999)).
		Return(nil, apperrors.NewNotFoundError("No vehicle with ID: 999"))

	controllers.NewVehicleController(svc).GetByID(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No vehicle with ID: 999", errorMessage(t, w))
}

func TestVehicleGetByIDInvalidParam(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/vehicles/id/abc", "")
	ctx.Params = gin.Params{{Key: "id", Value: "abc"}}

	svc := new(mocks.VehicleManager)
	controllers.NewVehicleController(svc).GetByID(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id: abc", errorMessage(t, w))
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestVehicleList(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/vehicles", "")

	svc := new(mocks.VehicleManager)
	svc.On("List", mock.Anything).Return([]*models.Vehicle{
		{ID: 1, Mobile: "555-0100"},
		{ID: 2, Mobile: "555-0101"},
	}, nil)

	controllers.NewVehicleController(svc).List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Vehicles []models.Vehicle `json:"vehicles"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Vehicles, 2)
}

func TestVehicleUpdateUnknownFieldRejected(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPatch, "/api/v1/vehicles/id/5", `{"colour":"red"}`)
	ctx.Params = gin.Params{{Key: "id", Value: "5"}}

	svc := new(mocks.VehicleManager)
	controllers.NewVehicleController(svc).Update(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVehicleUpdateEmptyBodyReachesService(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPatch, "/api/v1/vehicles/id/5", "")
	ctx.Params = gin.Params{{Key: "id", Value: "5"}}

	svc := new(mocks.VehicleManager)
	svc.On("Update", mock.Anything, int64(5), mock.AnythingOfType("*dto.UpdateVehicleRequest")).
		Return(nil, apperrors.NewBadRequestError("no fields to update"))

	controllers.NewVehicleController(svc).Update(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", errorMessage(t, w))
}

func TestVehicleRemove(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodDelete, "/api/v1/vehicles/id/7", "")
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	svc := new(mocks.VehicleManager)
	svc.On("Remove", mock.Anything, int64(7)).Return(nil)

	controllers.NewVehicleController(svc).Remove(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7", resp["deleted"])
}
