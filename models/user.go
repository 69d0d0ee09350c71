package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string  `json:"display_name"`
	GoalCalories float64 `json:"goal_calories"` // kcal per day, 0 = unset
	GoalWater    float64 `json:"goal_water"`    // glasses per day, 0 = unset
}
