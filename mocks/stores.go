package mocks

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nutritrack/models"
)

// MockUserStore is a mock implementation of services.UserStore
type MockUserStore struct {
	CreateFunc    func(ctx context.Context, u *models.User) error
	FindByIDFunc  func(ctx context.Context, id uint) (*models.User, error)
	SaveGoalsFunc func(ctx context.Context, u *models.User, snapshot *models.DayGoal) error
	ListIDsFunc   func(ctx context.Context) ([]uint, error)
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserStore) SaveGoals(ctx context.Context, u *models.User, snapshot *models.DayGoal) error {
	if m.SaveGoalsFunc != nil {
		return m.SaveGoalsFunc(ctx, u, snapshot)
	}
	return nil
}

func (m *MockUserStore) ListIDs(ctx context.Context) ([]uint, error) {
	if m.ListIDsFunc != nil {
		return m.ListIDsFunc(ctx)
	}
	return nil, nil
}

// MockMealLogStore is a mock implementation of services.MealLogStore
type MockMealLogStore struct {
	CreateFunc            func(ctx context.Context, log *models.MealLog) error
	ListByUserBetweenFunc func(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error)
	DeleteFunc            func(ctx context.Context, userID, id uint) error
}

func (m *MockMealLogStore) Create(ctx context.Context, log *models.MealLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockMealLogStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error) {
	if m.ListByUserBetweenFunc != nil {
		return m.ListByUserBetweenFunc(ctx, userID, from, to)
	}
	return nil, nil
}

func (m *MockMealLogStore) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// MockDayGoalStore is a mock implementation of services.DayGoalStore
type MockDayGoalStore struct {
	ListByUserBetweenFunc func(ctx context.Context, userID uint, from, to time.Time) ([]models.DayGoal, error)
}

func (m *MockDayGoalStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.DayGoal, error) {
	if m.ListByUserBetweenFunc != nil {
		return m.ListByUserBetweenFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// MockShoppingListStore keeps items in memory unless a func override is set.
type MockShoppingListStore struct {
	Items              []models.ShoppingListItem
	ListByUserFunc     func(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	FindFunc           func(ctx context.Context, userID uint, food, portion string) (*models.ShoppingListItem, error)
	SaveFunc           func(ctx context.Context, item *models.ShoppingListItem) error
	ReplaceForUserFunc func(ctx context.Context, userID uint, items []models.ShoppingListItem) error
}

func (m *MockShoppingListStore) ListByUser(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	var out []models.ShoppingListItem
	for _, it := range m.Items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MockShoppingListStore) Find(ctx context.Context, userID uint, food, portion string) (*models.ShoppingListItem, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, userID, food, portion)
	}
	for i := range m.Items {
		it := m.Items[i]
		if it.UserID == userID && it.Food == food && it.Portion == portion {
			return &it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockShoppingListStore) Save(ctx context.Context, item *models.ShoppingListItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	for i := range m.Items {
		it := &m.Items[i]
		if it.UserID == item.UserID && it.Food == item.Food && it.Portion == item.Portion {
			*it = *item
			return nil
		}
	}
	m.Items = append(m.Items, *item)
	return nil
}

func (m *MockShoppingListStore) ReplaceForUser(ctx context.Context, userID uint, items []models.ShoppingListItem) error {
	if m.ReplaceForUserFunc != nil {
		return m.ReplaceForUserFunc(ctx, userID, items)
	}
	kept := m.Items[:0]
	for _, it := range m.Items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	m.Items = append(kept, items...)
	return nil
}
