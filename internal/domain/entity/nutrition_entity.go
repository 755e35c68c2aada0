package entity

import (
	"encoding/json"
	"time"
)

// NutritionLog is an append-only record of consumed items for a user on a
// calendar day. Items is an opaque JSON payload; the core never inspects
// individual entries beyond summing calories in the database view.
type NutritionLog struct {
	ID            string
	UserID        string
	Date          time.Time
	Items         json.RawMessage
	TotalCalories float64
	CreatedAt     time.Time
}
