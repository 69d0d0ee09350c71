package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"nutritrack/models"
)

type FoodEntryRequest struct {
	Label    string  `json:"label" validate:"required"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories" validate:"gte=0,lte=100000"`
	Protein  float64 `json:"protein" validate:"gte=0,lte=10000"`
	Carbs    float64 `json:"carbs" validate:"gte=0,lte=10000"`
	Fats     float64 `json:"fats" validate:"gte=0,lte=10000"`
}

type MealLogRequest struct {
	EatenAt time.Time          `json:"eaten_at" validate:"required"`
	Meal    []FoodEntryRequest `json:"meal" validate:"required,min=1,dive"`
}

type MealLogService struct {
	meals  MealLogStore
	logger *zap.Logger
}

func NewMealLogService(meals MealLogStore, logger *zap.Logger) *MealLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealLogService{meals: meals, logger: logger}
}

// LogMeal validates and stores one meal with all of its food entries.
func (s *MealLogService) LogMeal(ctx context.Context, userID uint, req MealLogRequest) (*models.MealLog, error) {
	if req.EatenAt.IsZero() {
		return nil, fmt.Errorf("%w: eaten_at is required", ErrInvalidMeal)
	}
	entries := make([]FoodEntryRequest, len(req.Meal))
	for i, it := range req.Meal {
		it.Label = strings.TrimSpace(it.Label)
		it.Portion = strings.TrimSpace(it.Portion)
		entries[i] = it
	}
	req.Meal = entries
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMeal, err)
	}

	log := &models.MealLog{UserID: userID, EatenAt: req.EatenAt}
	for _, it := range req.Meal {
		log.Meal = append(log.Meal, models.FoodEntry{
			Label:    it.Label,
			Portion:  it.Portion,
			Calories: it.Calories,
			Protein:  it.Protein,
			Carbs:    it.Carbs,
			Fats:     it.Fats,
		})
	}

	if err := s.meals.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("create meal log: %w", err)
	}
	s.logger.Info("meal logged",
		zap.Uint("user_id", userID),
		zap.Uint("meal_log_id", log.ID),
		zap.Int("entries", len(log.Meal)))
	return log, nil
}

func (s *MealLogService) ListMealLogs(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	return s.meals.ListByUserBetween(ctx, userID, from, to)
}

func (s *MealLogService) DeleteMealLog(ctx context.Context, userID, id uint) error {
	if err := s.meals.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("meal log deleted", zap.Uint("user_id", userID), zap.Uint("meal_log_id", id))
	return nil
}
