package application

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	repo "github.com/heelmeals/nutritrack/internal/domain/repository"
)

// DailyCalories is one point of the placeholder series returned when no date
// range is given. It is synthetic sample data, not persisted truth.
type DailyCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

// NutritionService owns nutrition-log appends and range queries.
type NutritionService struct {
	Logs repo.NutritionRepository

	// now is swappable in tests.
	now func() time.Time
}

func NewNutritionService(logs repo.NutritionRepository) *NutritionService {
	return &NutritionService{Logs: logs, now: time.Now}
}

// Append inserts a new log entry. Entries are never merged: logging the same
// date twice yields two rows.
func (s *NutritionService) Append(ctx context.Context, userID string, date time.Time, items json.RawMessage) (*entity.NutritionLog, error) {
	log := &entity.NutritionLog{UserID: userID, Date: date, Items: items}
	if err := s.Logs.Append(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// LogsInRange returns the user's rows within the inclusive range, date
// ascending, with database-computed calorie totals.
func (s *NutritionService) LogsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.NutritionLog, error) {
	return s.Logs.ListByDateRange(ctx, userID, start, end)
}

// PlaceholderSeries synthesizes a 7-day calorie series ending today, dates
// strictly increasing, calories in [1500, 2000). Callers must not treat it as
// persisted data.
func (s *NutritionService) PlaceholderSeries() []DailyCalories {
	today := s.now()
	series := make([]DailyCalories, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		series = append(series, DailyCalories{
			Date:     d.Format("2006-01-02"),
			Calories: 1500 + rand.Intn(500),
		})
	}
	return series
}
