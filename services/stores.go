package services

import (
	"context"
	"time"

	"nutritrack/models"
)

// The stores below are the document-store contract the services rely on.
// Missing rows are reported as gorm.ErrRecordNotFound.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// SaveGoals persists u and upserts snapshot atomically.
	SaveGoals(ctx context.Context, u *models.User, snapshot *models.DayGoal) error
	ListIDs(ctx context.Context) ([]uint, error)
}

type MealLogStore interface {
	Create(ctx context.Context, log *models.MealLog) error
	// ListByUserBetween returns logs with from <= eaten_at < to, oldest first.
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error)
	Delete(ctx context.Context, userID, id uint) error
}

type DayGoalStore interface {
	// ListByUserBetween returns goals with from <= date < to, oldest first.
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.DayGoal, error)
}

type ShoppingListStore interface {
	ListByUser(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	Find(ctx context.Context, userID uint, food, portion string) (*models.ShoppingListItem, error)
	Save(ctx context.Context, item *models.ShoppingListItem) error
	ReplaceForUser(ctx context.Context, userID uint, items []models.ShoppingListItem) error
}
