package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// SurveyService handles guest survey operations
type SurveyService struct {
	surveyRepo *repositories.SurveyRepository
	logger     zerolog.Logger
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(surveyRepo *repositories.SurveyRepository, logger zerolog.Logger) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo, logger: logger}
}

// Create records a new survey response
func (s *SurveyService) Create(ctx context.Context, req *dto.CreateSurveyRequest) (*models.Survey, error) {
	survey := &models.Survey{
		TransactionID: req.TransactionID,
		Q1Response:    req.Q1Response,
		Q2Response:    req.Q2Response,
		Q3Response:    req.Q3Response,
		Q4Response:    req.Q4Response,
		Q5Response:    req.Q5Response,
		Q6Response:    req.Q6Response,
	}

	created, err := s.surveyRepo.Create(ctx, survey)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("surveyId", created.ID).Int64("transactionId", created.TransactionID).Msg("Survey recorded")
	return created, nil
}

// GetByID retrieves a survey by id
func (s *SurveyService) GetByID(ctx context.Context, id int64) (*models.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// List retrieves all surveys, newest first
func (s *SurveyService) List(ctx context.Context) ([]*models.Survey, error) {
	return s.surveyRepo.List(ctx)
}

// Update applies a partial update to a survey
func (s *SurveyService) Update(ctx context.Context, id int64, req *dto.UpdateSurveyRequest) (*models.Survey, error) {
	return s.surveyRepo.Update(ctx, id, req.UpdateData())
}

// Remove deletes a survey
func (s *SurveyService) Remove(ctx context.Context, id int64) error {
	return s.surveyRepo.Remove(ctx, id)
}
