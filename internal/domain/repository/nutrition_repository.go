package repository

import (
	"context"
	"time"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
)

// NutritionRepository defines persistence for nutrition log entries.
type NutritionRepository interface {
	// Append inserts a new log row. Entries are never merged or deduplicated;
	// multiple rows per user per date are allowed.
	Append(ctx context.Context, log *entity.NutritionLog) error
	// ListByDateRange returns the user's rows within [start, end] inclusive,
	// ordered by date ascending, with total_calories computed by the database.
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.NutritionLog, error)
}
