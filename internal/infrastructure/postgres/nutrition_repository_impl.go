package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/domain/repository"
)

type NutritionRepository struct {
	pool *pgxpool.Pool
}

func NewNutritionRepository(pool *pgxpool.Pool) *NutritionRepository {
	return &NutritionRepository{pool: pool}
}

func (r *NutritionRepository) Append(ctx context.Context, log *entity.NutritionLog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO nutrition_logs (user_id, date, items)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, log.UserID, log.Date, log.Items)

	return row.Scan(&log.ID, &log.CreatedAt)
}

func (r *NutritionRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.NutritionLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, date, items, total_calories, created_at
		FROM nutrition_logs_with_totals
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*entity.NutritionLog, 0)
	for rows.Next() {
		l := &entity.NutritionLog{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Items, &l.TotalCalories, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

var _ repository.NutritionRepository = (*NutritionRepository)(nil)
