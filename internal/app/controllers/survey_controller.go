package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// SurveyManager is the survey service surface the controller needs
type SurveyManager interface {
	Create(ctx context.Context, req *dto.CreateSurveyRequest) (*models.Survey, error)
	GetByID(ctx context.Context, id int64) (*models.Survey, error)
	List(ctx context.Context) ([]*models.Survey, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSurveyRequest) (*models.Survey, error)
	Remove(ctx context.Context, id int64) error
}

// SurveyController handles guest survey routes
type SurveyController struct {
	surveyService SurveyManager
}

// NewSurveyController creates a new SurveyController
func NewSurveyController(surveyService SurveyManager) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// Create handles POST /surveys
func (c *SurveyController) Create(ctx *gin.Context) {
	var req dto.CreateSurveyRequest
	if !bindCreate(ctx, &req) {
		return
	}

	survey, err := c.surveyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"survey": survey})
}

// GetByID handles GET /surveys/id/:id
func (c *SurveyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	survey, err := c.surveyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"survey": survey})
}

// List handles GET /surveys
func (c *SurveyController) List(ctx *gin.Context) {
	surveys, err := c.surveyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

// Update handles PATCH /surveys/id/:id
func (c *SurveyController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSurveyRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	survey, err := c.surveyService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"survey": survey})
}

// Remove handles DELETE /surveys/id/:id
func (c *SurveyController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.surveyService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
