package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fitness4all/backend/internal/models"
)

// CalendarRepository stores calendar months as whole documents: one JSONB
// payload per (user, "{year}-{month}") key, replaced on every write.
// Concurrent writers race with last-write-wins semantics.
type CalendarRepository struct {
	db *pgxpool.Pool
}

func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// GetMonth returns the month document for the key, or an empty document when
// none was stored yet.
func (r *CalendarRepository) GetMonth(ctx context.Context, userID uuid.UUID, monthKey string) (models.CalendarMonth, error) {
	month := models.CalendarMonth{
		UserID:   userID,
		MonthKey: monthKey,
		Days:     models.MonthDocument{},
	}

	var payload []byte
	var updatedAt time.Time
	err := r.db.QueryRow(ctx,
		`SELECT days, updated_at
		 FROM calendar_months
		 WHERE user_id = $1 AND month_key = $2`,
		userID, monthKey,
	).Scan(&payload, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return month, nil
		}
		return month, err
	}

	if err := json.Unmarshal(payload, &month.Days); err != nil {
		return month, fmt.Errorf("decode calendar month %s: %w", monthKey, err)
	}

	month.UpdatedAt = updatedAt
	return month, nil
}

// SetMonth replaces the month document for the key.
func (r *CalendarRepository) SetMonth(ctx context.Context, userID uuid.UUID, monthKey string, days models.MonthDocument) error {
	payload, err := json.Marshal(days)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO calendar_months (user_id, month_key, days, updated_at)
		 VALUES ($1, $2, $3::jsonb, NOW())
		 ON CONFLICT (user_id, month_key)
		 DO UPDATE SET days = EXCLUDED.days, updated_at = NOW()`,
		userID, monthKey, string(payload),
	)
	return err
}
