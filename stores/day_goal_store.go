package stores

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nutritrack/models"
)

type DayGoalStore struct{ db *gorm.DB }

func NewDayGoalStore(db *gorm.DB) *DayGoalStore { return &DayGoalStore{db: db} }

// Upsert by (user_id, date @ local midnight)
func (s *DayGoalStore) Upsert(ctx context.Context, goal *models.DayGoal) error {
	return upsertDayGoal(s.db.WithContext(ctx), goal)
}

func (s *DayGoalStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.DayGoal, error) {
	var goals []models.DayGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, updated_at ASC").
		Find(&goals).Error
	return goals, err
}

// upsertDayGoal assigns through a map so a goal of 0 overwrites the stored value.
func upsertDayGoal(db *gorm.DB, goal *models.DayGoal) error {
	return db.
		Where("user_id = ? AND date = ?", goal.UserID, goal.Date).
		Assign(map[string]any{"goal_calories": goal.GoalCalories, "goal_water": goal.GoalWater}).
		FirstOrCreate(goal).Error
}
