package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/heelmeals/nutritrack/config"
)

type seedItem struct {
	name        string
	diningHall  string
	calories    int
	protein     float64
	carbs       float64
	fat         float64
	description string
}

var menuSeed = []seedItem{
	{"Grilled Chicken Breast", "Lenoir Dining Hall", 280, 35, 0, 12, "Herb-marinated chicken breast off the grill"},
	{"Garden Salad", "Lenoir Dining Hall", 120, 3, 14, 6, "Mixed greens, tomato, cucumber, house vinaigrette"},
	{"Cheese Pizza Slice", "Lenoir Dining Hall", 310, 13, 36, 12, "Classic cheese slice from the pizza station"},
	{"Vegetable Stir Fry", "Lenoir Dining Hall", 220, 7, 30, 8, "Wok-fried seasonal vegetables over rice"},
	{"Salmon Fillet", "Chase Dining Hall", 360, 34, 2, 22, "Baked Atlantic salmon with lemon"},
	{"Black Bean Burger", "Chase Dining Hall", 390, 18, 44, 16, "House-made black bean patty on a wheat bun"},
	{"Greek Yogurt Parfait", "Chase Dining Hall", 240, 14, 34, 5, "Yogurt layered with granola and berries"},
	{"Pasta Marinara", "Chase Dining Hall", 420, 12, 70, 9, "Penne with marinara and parmesan"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	inserted := 0
	for _, it := range menuSeed {
		res, err := db.Exec(`
			INSERT INTO menu_items (name, dining_hall, calories, protein, carbs, fat, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name, dining_hall) DO NOTHING
		`, it.name, it.diningHall, it.calories, it.protein, it.carbs, it.fat, it.description)
		if err != nil {
			log.Fatalf("failed to seed %q: %v", it.name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	fmt.Printf("menu items seeded: %d new, %d total in seed set\n", inserted, len(menuSeed))
}
