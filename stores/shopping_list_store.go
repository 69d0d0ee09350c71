package stores

import (
	"context"

	"gorm.io/gorm"

	"nutritrack/models"
)

type ShoppingListStore struct{ db *gorm.DB }

func NewShoppingListStore(db *gorm.DB) *ShoppingListStore { return &ShoppingListStore{db: db} }

func (s *ShoppingListStore) ListByUser(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("food ASC, portion ASC").
		Find(&items).Error
	return items, err
}

func (s *ShoppingListStore) Find(ctx context.Context, userID uint, food, portion string) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND food = ? AND portion = ?", userID, food, portion).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingListStore) Save(ctx context.Context, item *models.ShoppingListItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

// ReplaceForUser drops the user's current list and inserts items.
func (s *ShoppingListStore) ReplaceForUser(ctx context.Context, userID uint, items []models.ShoppingListItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
