package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/services"
)

// Controllers bundles every HTTP controller for route registration.
type Controllers struct {
	Auth        *AuthController
	User        *UserController
	Vehicle     *VehicleController
	Transaction *TransactionController
	Location    *LocationController
	Podium      *PodiumController
	Region      *RegionController
	Role        *RoleController
	Status      *StatusController
	Survey      *SurveyController
	Assignment  *AssignmentController
	Report      *ReportController
}

// NewControllers constructs all controllers over the service set.
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(svc.Auth),
		User:        NewUserController(svc.User),
		Vehicle:     NewVehicleController(svc.Vehicle),
		Transaction: NewTransactionController(svc.Transaction),
		Location:    NewLocationController(svc.Location),
		Podium:      NewPodiumController(svc.Podium),
		Region:      NewRegionController(svc.Region),
		Role:        NewRoleController(svc.Role),
		Status:      NewStatusController(svc.Status),
		Survey:      NewSurveyController(svc.Survey),
		Assignment:  NewAssignmentController(svc.Assignment),
		Report:      NewReportController(svc.Report),
	}
}

// parseIDParam reads a positive int64 path parameter, responding 400 itself
// when the value does not parse.
func parseIDParam(ctx *gin.Context, param string) (int64, bool) {
	raw := ctx.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(fmt.Sprintf("Invalid id: %s", raw), http.StatusBadRequest))
		return 0, false
	}
	return id, true
}

// bindCreate binds and validates a POST body, responding 400 on failure.
func bindCreate(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body: "+err.Error(), http.StatusBadRequest))
		return false
	}
	return true
}

// bindUpdate binds a PATCH body strictly: unknown fields are rejected so a
// misspelled field fails loudly instead of silently updating nothing. An
// empty body still decodes; the partial-update builder rejects it before any
// statement runs.
func bindUpdate(ctx *gin.Context, out interface{}) bool {
	dec := json.NewDecoder(ctx.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body: "+err.Error(), http.StatusBadRequest))
		return false
	}
	if err := binding.Validator.ValidateStruct(out); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body: "+err.Error(), http.StatusBadRequest))
		return false
	}
	return true
}
