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

func TestTransactionCreate(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/transactions",
		`{"userId":4,"vehicleId":7,"podiumId":2,"locationId":1}`)

	svc := new(mocks.TransactionManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateTransactionRequest")).
		Return(&models.Transaction{ID: 31, UserID: 4, VehicleID: 7, PodiumID: 2, LocationID: 1, StatusID: models.StatusCheckedIn}, nil)

	controllers.NewTransactionController(svc).Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(31), resp.Transaction.ID)
	assert.Equal(t, models.StatusCheckedIn, resp.Transaction.StatusID)
}

func TestTransactionCreateBadReference(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/transactions",
		`{"userId":4,"vehicleId":999,"podiumId":2,"locationId":1}`)

	svc := new(mocks.TransactionManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewBadRequestError("No vehicle with ID: 999"))

	controllers.NewTransactionController(svc).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No vehicle with ID: 999", errorMessage(t, w))
}

func TestTransactionOpenByVehicle(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/transactions/vehicle/7", "")
	ctx.Params = gin.Params{{Key: "vehicleId", Value: "7"}}

	svc := new(mocks.TransactionManager)
	svc.On("OpenByVehicle", mock.Anything, int64(7)).
		Return(&models.Transaction{ID: 31, VehicleID: 7, StatusID: models.StatusParked}, nil)

	controllers.NewTransactionController(svc).OpenByVehicle(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transaction *models.Transaction `json:"transaction"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Transaction)
	assert.Equal(t, int64(31), resp.Transaction.ID)
}

func TestTransactionOpenByVehicleNone(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/transactions/vehicle/7", "")
	ctx.Params = gin.Params{{Key: "vehicleId", Value: "7"}}

	svc := new(mocks.TransactionManager)
	svc.On("OpenByVehicle", mock.Anything, int64(7)).Return(nil, nil)

	controllers.NewTransactionController(svc).OpenByVehicle(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transaction *models.Transaction `json:"transaction"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Transaction)
}

func TestTransactionRemove(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodDelete, "/api/v1/transactions/id/31", "")
	ctx.Params = gin.Params{{Key: "id", Value: "31"}}

	svc := new(mocks.TransactionManager)
	svc.On("Remove", mock.Anything, int64(31)).Return(nil)

	controllers.NewTransactionController(svc).Remove(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "31", resp["deleted"])
}
