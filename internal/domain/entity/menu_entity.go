package entity

// MenuItem is a catalog entry for a dining-hall dish.
type MenuItem struct {
	ID          string
	Name        string
	DiningHall  string
	Calories    int
	Protein     float64
	Carbs       float64
	Fat         float64
	Description string
}
