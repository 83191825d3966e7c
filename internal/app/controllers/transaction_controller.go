package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// TransactionManager is the transaction service surface the controller needs
type TransactionManager interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	OpenByVehicle(ctx context.Context, vehicleID int64) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	Remove(ctx context.Context, id int64) error
}

// TransactionController handles transaction routes
type TransactionController struct {
	transactionService TransactionManager
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactionService TransactionManager) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

// Create handles POST /transactions
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindCreate(ctx, &req) {
		return
	}

	transaction, err := c.transactionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetByID handles GET /transactions/id/:id
func (c *TransactionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	transaction, err := c.transactionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// OpenByVehicle handles GET /transactions/vehicle/:vehicleId. The body's
// transaction key is null when the vehicle has no open transaction.
func (c *TransactionController) OpenByVehicle(ctx *gin.Context) {
	vehicleID, ok := parseIDParam(ctx, "vehicleId")
	if !ok {
		return
	}

	transaction, err := c.transactionService.OpenByVehicle(ctx.Request.Context(), vehicleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// List handles GET /transactions
func (c *TransactionController) List(ctx *gin.Context) {
	transactions, err := c.transactionService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// Update handles PATCH /transactions/id/:id
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	transaction, err := c.transactionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// Remove handles DELETE /transactions/id/:id
func (c *TransactionController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.transactionService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
