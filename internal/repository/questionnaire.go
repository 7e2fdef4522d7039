package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fitness4all/backend/internal/models"
)

type QuestionnaireRepository struct {
	db *pgxpool.Pool
}

func NewQuestionnaireRepository(db *pgxpool.Pool) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db}
}

// Create persists a questionnaire snapshot. Records are immutable after this.
func (r *QuestionnaireRepository) Create(ctx context.Context, userID uuid.UUID, title, prompt string, answers []byte) (models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.QueryRow(ctx,
		`INSERT INTO questionnaires (user_id, title, prompt, answers)
		 VALUES ($1, $2, $3, $4::jsonb)
		 RETURNING id, user_id, title, prompt, answers, created_at`,
		userID, title, prompt, string(answers),
	).Scan(&q.ID, &q.UserID, &q.Title, &q.Prompt, &q.Answers, &q.CreatedAt)
	return q, err
}

// GetByID returns one questionnaire owned by the user.
func (r *QuestionnaireRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, prompt, answers, created_at
		 FROM questionnaires
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&q.ID, &q.UserID, &q.Title, &q.Prompt, &q.Answers, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return q, ErrNotFound
		}
		return q, err
	}

	return q, nil
}

// ListByUser returns the user's questionnaires, newest first.
func (r *QuestionnaireRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Questionnaire, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, prompt, answers, created_at
		 FROM questionnaires
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questionnaires := make([]models.Questionnaire, 0)
	for rows.Next() {
		var q models.Questionnaire
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Prompt, &q.Answers, &q.CreatedAt); err != nil {
			return nil, err
		}
		questionnaires = append(questionnaires, q)
	}

	return questionnaires, rows.Err()
}
