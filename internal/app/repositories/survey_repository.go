package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
	"github.com/parkpilot/parkpilot/internal/pkg/dberrors"
	"github.com/parkpilot/parkpilot/internal/pkg/helpers"
)

// surveyJSToSQL maps public field names to surveys columns for partial
// updates.
var surveyJSToSQL = map[string]string{
	"transactionId": "transaction_id",
	"q1Response":    "q1_response",
	"q2Response":    "q2_response",
	"q3Response":    "q3_response",
	"q4Response":    "q4_response",
	"q5Response":    "q5_response",
	"q6Response":    "q6_response",
}

const surveyColumns = `id, transaction_id, q1_response, q2_response, q3_response, q4_response, q5_response, q6_response, submitted_at`

// SurveyRepository handles database operations for guest surveys
type SurveyRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{db: db, deletePolicy: DeleteHard}
}

func scanSurvey(row pgx.Row) (*models.Survey, error) {
	var s models.Survey
	err := row.Scan(&s.ID, &s.TransactionID, &s.Q1Response, &s.Q2Response,
		&s.Q3Response, &s.Q4Response, &s.Q5Response, &s.Q6Response, &s.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new survey response
func (r *SurveyRepository) Create(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	query := `
		INSERT INTO surveys (transaction_id, q1_response, q2_response, q3_response, q4_response, q5_response, q6_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + surveyColumns

	created, err := scanSurvey(r.db.QueryRow(ctx, query,
		survey.TransactionID, survey.Q1Response, survey.Q2Response,
		survey.Q3Response, survey.Q4Response, survey.Q5Response, survey.Q6Response))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("No transaction with ID: %d", survey.TransactionID))
		}
		return nil, fmt.Errorf("error creating survey: %w", err)
	}

	return created, nil
}

// GetByID retrieves a survey by id
func (r *SurveyRepository) GetByID(ctx context.Context, id int64) (*models.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1`

	survey, err := scanSurvey(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No survey with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving survey: %w", err)
	}

	return survey, nil
}

// List retrieves all surveys, newest first.
func (r *SurveyRepository) List(ctx context.Context) ([]*models.Survey, error) {
	rows, err := r.db.Query(ctx, `SELECT `+surveyColumns+` FROM surveys ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	surveys := []*models.Survey{}
	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, survey)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return surveys, nil
}

// Update applies a partial update to a survey and returns the updated row.
func (r *SurveyRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Survey, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, surveyJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE surveys SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, surveyColumns)

	survey, err := scanSurvey(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No survey with ID: %d", id))
		}
		return nil, fmt.Errorf("error updating survey: %w", err)
	}

	return survey, nil
}

// Remove deletes a survey per the repository's delete policy (hard).
func (r *SurveyRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE surveys SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`
	default:
		cmdQuery = `DELETE FROM surveys WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting survey: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No survey with ID: %d", id))
	}

	return nil
}
