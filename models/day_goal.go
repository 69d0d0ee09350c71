package models

import (
	"time"

	"gorm.io/gorm"
)

// DayGoal snapshots the goals that were in effect on one calendar day.
type DayGoal struct {
	gorm.Model
	UserID       uint      `gorm:"uniqueIndex:idx_day_goal_user_date;not null" json:"user_id"`
	Date         time.Time `gorm:"uniqueIndex:idx_day_goal_user_date;not null" json:"date"` // local midnight
	GoalCalories float64   `json:"goal_calories"`
	GoalWater    float64   `json:"goal_water"`
}
