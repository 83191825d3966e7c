package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// Authenticator issues tokens and registers accounts
type Authenticator interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
}

// AuthController handles login and registration
type AuthController struct {
	authService Authenticator
}

// NewAuthController creates a new AuthController
func NewAuthController(authService Authenticator) *AuthController {
	return &AuthController{authService: authService}
}

// Token handles POST /auth/token
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindCreate(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token.Token})
}

// Register handles POST /auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindCreate(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &dto.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": user, "token": token.Token})
}
