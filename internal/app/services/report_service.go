package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

// DefaultTimezone is used for dashboard day boundaries when a request does
// not name one.
const DefaultTimezone = "UTC"

// ReportService serves the joined activity feeds and dashboard rollups
type ReportService struct {
	reportRepo     *repositories.ReportRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo *repositories.ReportRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{reportRepo: reportRepo, assignmentRepo: assignmentRepo, logger: logger}
}

// PodiumActivity retrieves the full joined activity feed for one podium
func (s *ReportService) PodiumActivity(ctx context.Context, podiumID int64) ([]*models.PodiumActivity, error) {
	return s.reportRepo.PodiumActivity(ctx, podiumID)
}

// TransactionDetail retrieves one transaction's joined row with its status
// label
func (s *ReportService) TransactionDetail(ctx context.Context, transactionID int64) (*models.TransactionDetail, error) {
	return s.reportRepo.TransactionDetail(ctx, transactionID)
}

// Dashboard rolls up today's counts across the podiums a user is assigned
// to. The timezone must be a valid IANA name; it anchors the day boundary.
func (s *ReportService) Dashboard(ctx context.Context, userID int64, timezone string) (*models.DashboardStats, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid timezone: " + timezone)
	}

	podiums, err := s.assignmentRepo.PodiumsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(podiums) == 0 {
		return &models.DashboardStats{}, nil
	}

	podiumIDs := make([]int64, 0, len(podiums))
	for _, p := range podiums {
		podiumIDs = append(podiumIDs, p.PodiumID)
	}

	return s.reportRepo.DashboardStats(ctx, podiumIDs, timezone)
}
