package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/parkpilot/parkpilot/internal/app/models"
)

type ReportManager struct{ mock.Mock }

func (m *ReportManager) PodiumActivity(ctx context.Context, podiumID int64) ([]*models.PodiumActivity, error) {
	args := m.Called(ctx, podiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PodiumActivity), args.Error(1)
}

func (m *ReportManager) TransactionDetail(ctx context.Context, transactionID int64) (*models.TransactionDetail, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionDetail), args.Error(1)
}

func (m *ReportManager) Dashboard(ctx context.Context, userID int64, timezone string) (*models.DashboardStats, error) {
	args := m.Called(ctx, userID, timezone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
