package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/mocks"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func TestAuthToken(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/auth/token",
		`{"username":"jsmith","password":"hunter22!"}`)

	svc := new(mocks.Authenticator)
	svc.On("Login", mock.Anything, &dto.LoginRequest{Username: "jsmith", Password: "hunter22!"}).
		Return(&dto.TokenResponse{Token: "signed.jwt.token"}, nil)

	controllers.NewAuthController(svc).Token(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp["token"])

	svc.AssertExpectations(t)
}

func TestAuthTokenBadCredentials(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/auth/token",
		`{"username":"jsmith","password":"wrong"}`)

	svc := new(mocks.Authenticator)
	svc.On("Login", mock.Anything, mock.AnythingOfType("*dto.LoginRequest")).
		Return(nil, apperrors.NewUnauthorizedError("Invalid username or password"))

	controllers.NewAuthController(svc).Token(ctx)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", errorMessage(t, w))
}

func TestAuthTokenMissingPassword(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/auth/token", `{"username":"jsmith"}`)

	svc := new(mocks.Authenticator)
	controllers.NewAuthController(svc).Token(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthRegister(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"newvalet","password":"longenough","firstName":"New","lastName":"Valet","email":"new@parkpilot.app","phone":"555-0142"}`)

	svc := new(mocks.Authenticator)
	svc.On("Register", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&models.User{ID: 12, Username: "newvalet", RoleID: models.RoleValet}, nil)
	svc.On("Login", mock.Anything, &dto.LoginRequest{Username: "newvalet", Password: "longenough"}).
		Return(&dto.TokenResponse{Token: "fresh.jwt.token"}, nil)

	controllers.NewAuthController(svc).Register(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newvalet", resp.User.Username)
	assert.Equal(t, models.RoleValet, resp.User.RoleID)
	assert.Equal(t, "fresh.jwt.token", resp.Token)

	svc.AssertExpectations(t)
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"jsmith","password":"longenough","firstName":"J","lastName":"Smith","email":"j@parkpilot.app","phone":"555-0143"}`)

	svc := new(mocks.Authenticator)
	svc.On("Register", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(nil, apperrors.NewDuplicateError("Username: jsmith is already taken"))

	controllers.NewAuthController(svc).Register(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username: jsmith is already taken", errorMessage(t, w))
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
