package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// GoogleID is the external OAuth subject id and is immutable once set;
// email and name are seeded from the Google profile at first login and
// mutable through profile updates afterwards.
type User struct {
	ID               string
	GoogleID         string
	Email            string
	Name             string
	AvatarURL        string
	Preferences      Preferences
	HasCompletedForm bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Preferences holds the onboarding attributes. All fields are optional
// until the user submits the preferences form; pointers distinguish
// "never set" from zero values.
type Preferences struct {
	Height              *float64
	Weight              *float64
	Age                 *int
	DietaryRestrictions []string
	NutritionGoals      *string
	ActivityLevel       *int
}
