package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is one logged meal with every food eaten in it.
type MealLog struct {
	gorm.Model
	UserID  uint        `gorm:"index;not null" json:"user_id"`
	EatenAt time.Time   `gorm:"index;not null" json:"eaten_at"`
	Meal    []FoodEntry `gorm:"foreignKey:MealLogID;constraint:OnDelete:CASCADE" json:"meal"`
}

// FoodEntry stores the nutrition snapshot of a single food inside a meal.
type FoodEntry struct {
	gorm.Model
	MealLogID uint    `gorm:"index;not null" json:"meal_log_id"`
	Label     string  `gorm:"not null" json:"label"`
	Portion   string  `json:"portion"` // e.g. "100 g", "1 cup"
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
}
