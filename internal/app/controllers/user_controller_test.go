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
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/mocks"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func TestUserCreate(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/users",
		`{"username":"jsmith","password":"longenough","firstName":"John","lastName":"Smith","email":"jsmith@parkpilot.app","phone":"555-0100","roleId":2}`)

	svc := new(mocks.UserManager)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateUserRequest")).
		Return(&models.User{ID: 4, Username: "jsmith", RoleID: models.RoleSupervisor}, nil)

	controllers.NewUserController(svc).Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.User.ID)
	assert.Empty(t, resp.User.Password)
}

func TestUserGetByIDNotFound(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/users/id/999", "")
	ctx.Params = gin.Params{{Key: "id", Value: "999"}}

	svc := new(mocks.UserManager)
	svc.On("GetByID", mock.Anything, int64(999)).
		Return(nil, apperrors.NewNotFoundError("No user with ID: 999"))

	controllers.NewUserController(svc).GetByID(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No user with ID: 999", errorMessage(t, w))
}

func TestUserGetByUsername(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/users/username/jsmith", "")
	ctx.Params = gin.Params{{Key: "username", Value: "jsmith"}}

	svc := new(mocks.UserManager)
	svc.On("GetByUsername", mock.Anything, "jsmith").
		Return(&models.User{ID: 4, Username: "jsmith"}, nil)

	controllers.NewUserController(svc).GetByUsername(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jsmith", resp.User.Username)
}

func TestUserIncrementParked(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/users/id/4/parked", "")
	ctx.Params = gin.Params{{Key: "id", Value: "4"}}

	svc := new(mocks.UserManager)
	svc.On("IncrementParked", mock.Anything, int64(4)).
		Return(&models.User{ID: 4, Username: "jsmith", TotalParked: 9}, nil)

	controllers.NewUserController(svc).IncrementParked(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.User.TotalParked)
}

func TestUserUpdateNullPodiumClearsAssignment(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPatch, "/api/v1/users/id/4", `{"podiumId":null}`)
	ctx.Params = gin.Params{{Key: "id", Value: "4"}}

	svc := new(mocks.UserManager)
	svc.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(req *dto.UpdateUserRequest) bool {
		return req.PodiumID.Present && !req.PodiumID.Valid
	})).Return(&models.User{ID: 4, Username: "jsmith", PodiumID: nil}, nil)

	controllers.NewUserController(svc).Update(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.User.PodiumID)

	svc.AssertExpectations(t)
}

func TestUserRemove(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodDelete, "/api/v1/users/id/4", "")
	ctx.Params = gin.Params{{Key: "id", Value: "4"}}

	svc := new(mocks.UserManager)
	svc.On("Remove", mock.Anything, int64(4)).Return(nil)

	controllers.NewUserController(svc).Remove(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4", resp["deleted"])
}
