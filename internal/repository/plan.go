package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fitness4all/backend/internal/models"
)

// PlanRepository stores generated plans. The table is append-only: a new plan
// never replaces an older one, it just becomes the latest.
type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, user_id, plan_type, plan, questionnaire_id, questionnaire_title, created_at`

func scanPlan(row pgx.Row) (models.GeneratedPlan, error) {
	var plan models.GeneratedPlan
	err := row.Scan(&plan.ID, &plan.UserID, &plan.PlanType, &plan.Plan,
		&plan.QuestionnaireID, &plan.QuestionnaireTitle, &plan.CreatedAt)
	return plan, err
}

// Create appends a generated plan.
func (r *PlanRepository) Create(ctx context.Context, userID uuid.UUID, planType models.PlanType, planText string, questionnaireID uuid.UUID, questionnaireTitle string) (models.GeneratedPlan, error) {
	return scanPlan(r.db.QueryRow(ctx,
		`INSERT INTO generated_plans (user_id, plan_type, plan, questionnaire_id, questionnaire_title)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+planColumns,
		userID, planType, planText, questionnaireID, questionnaireTitle,
	))
}

// Latest returns the user's current plan of the given type.
func (r *PlanRepository) Latest(ctx context.Context, userID uuid.UUID, planType models.PlanType) (models.GeneratedPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx,
		`SELECT `+planColumns+`
		 FROM generated_plans
		 WHERE user_id = $1 AND plan_type = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID, planType,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return plan, ErrNotFound
	}
	return plan, err
}

// ListByUser returns the user's plan history, newest first, optionally
// restricted to one plan type.
func (r *PlanRepository) ListByUser(ctx context.Context, userID uuid.UUID, planType *models.PlanType) ([]models.GeneratedPlan, error) {
	query := `SELECT ` + planColumns + `
		 FROM generated_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC`
	args := []interface{}{userID}

	if planType != nil {
		query = `SELECT ` + planColumns + `
		 FROM generated_plans
		 WHERE user_id = $1 AND plan_type = $2
		 ORDER BY created_at DESC`
		args = append(args, *planType)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.GeneratedPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}
