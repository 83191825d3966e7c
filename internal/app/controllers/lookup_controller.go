package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// RoleManager is the role service surface the controller needs
type RoleManager interface {
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*models.Role, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	List(ctx context.Context) ([]*models.Role, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRoleRequest) (*models.Role, error)
	Remove(ctx context.Context, id int64) error
}

// RoleController handles role lookup routes
type RoleController struct {
	roleService RoleManager
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService RoleManager) *RoleController {
	return &RoleController{roleService: roleService}
}

// Create handles POST /roles
func (c *RoleController) Create(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if !bindCreate(ctx, &req) {
		return
	}

	role, err := c.roleService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"role": role})
}

// GetByID handles GET /roles/id/:id
func (c *RoleController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, err := c.roleService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"role": role})
}

// List handles GET /roles
func (c *RoleController) List(ctx *gin.Context) {
	roles, err := c.roleService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"roles": roles})
}

// Update handles PATCH /roles/id/:id
func (c *RoleController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	role, err := c.roleService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"role": role})
}

// Remove handles DELETE /roles/id/:id
func (c *RoleController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roleService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}

// StatusManager is the status service surface the controller needs
type StatusManager interface {
	Create(ctx context.Context, req *dto.CreateStatusRequest) (*models.Status, error)
	GetByID(ctx context.Context, id int64) (*models.Status, error)
	List(ctx context.Context) ([]*models.Status, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStatusRequest) (*models.Status, error)
	Remove(ctx context.Context, id int64) error
}

// StatusController handles transaction status lookup routes
type StatusController struct {
	statusService StatusManager
}

// NewStatusController creates a new StatusController
func NewStatusController(statusService StatusManager) *StatusController {
	return &StatusController{statusService: statusService}
}

// Create handles POST /statuses
func (c *StatusController) Create(ctx *gin.Context) {
	var req dto.CreateStatusRequest
	if !bindCreate(ctx, &req) {
		return
	}

	status, err := c.statusService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": status})
}

// GetByID handles GET /statuses/id/:id
func (c *StatusController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	status, err := c.statusService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": status})
}

// List handles GET /statuses
func (c *StatusController) List(ctx *gin.Context) {
	statuses, err := c.statusService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// Update handles PATCH /statuses/id/:id
func (c *StatusController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	status, err := c.statusService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": status})
}

// Remove handles DELETE /statuses/id/:id
func (c *StatusController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.statusService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
