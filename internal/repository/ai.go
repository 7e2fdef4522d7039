package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AIRepository keeps an audit log of completion-service calls.
type AIRepository struct {
	db *pgxpool.Pool
}

type AIRequestLog struct {
	UserID       uuid.UUID
	RequestType  string
	Provider     string
	Model        string
	Prompt       string
	RawResponse  string
	Success      bool
	ErrorMessage *string
}

func NewAIRepository(db *pgxpool.Pool) *AIRepository {
	return &AIRepository{db: db}
}

// LogRequest stores one completion call outcome.
func (r *AIRepository) LogRequest(ctx context.Context, log AIRequestLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ai_requests
		 (user_id, request_type, provider, model, prompt, raw_response, success, error_message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.UserID,
		log.RequestType,
		log.Provider,
		log.Model,
		log.Prompt,
		log.RawResponse,
		log.Success,
		log.ErrorMessage,
	)
	return err
}
