package stores

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nutritrack/models"
)

type MealLogStore struct{ db *gorm.DB }

func NewMealLogStore(db *gorm.DB) *MealLogStore { return &MealLogStore{db: db} }

// Create inserts the log and its entries in one transaction.
func (s *MealLogStore) Create(ctx context.Context, log *models.MealLog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(log).Error
	})
}

func (s *MealLogStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Preload("Meal", func(db *gorm.DB) *gorm.DB { return db.Order("food_entries.id ASC") }).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from, to).
		Order("eaten_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

func (s *MealLogStore) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var log models.MealLog
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&log).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_log_id = ?", log.ID).Delete(&models.FoodEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&log).Error
	})
}
