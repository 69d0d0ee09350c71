package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nutritrack/models"
)

type Goals struct {
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
}

type goalInput struct {
	Value float64 `validate:"gte=0,lte=100000"`
}

// GoalService owns the user's calorie and water goals. Every change is saved
// together with today's DayGoal snapshot so reports know the goal per day.
type GoalService struct {
	users    UserStore
	days     DayGoalStore
	notifier ChangeNotifier
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewGoalService(users UserStore, days DayGoalStore, notifier ChangeNotifier, loc *time.Location, logger *zap.Logger) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &GoalService{users: users, days: days, notifier: notifier, loc: loc, now: time.Now, logger: logger}
}

func (s *GoalService) GetGoals(ctx context.Context, userID uint) (*Goals, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Goals{Calories: u.GoalCalories, Water: u.GoalWater}, nil
}

// UpdateCalorieGoal sets the daily calorie goal; 0 clears it.
func (s *GoalService) UpdateCalorieGoal(ctx context.Context, userID uint, goal float64) (*Goals, error) {
	return s.update(ctx, userID, goal, func(u *models.User) { u.GoalCalories = goal })
}

// UpdateWaterGoal sets the daily water goal in glasses; 0 clears it.
func (s *GoalService) UpdateWaterGoal(ctx context.Context, userID uint, goal float64) (*Goals, error) {
	return s.update(ctx, userID, goal, func(u *models.User) { u.GoalWater = goal })
}

func (s *GoalService) ListDayGoals(ctx context.Context, userID uint, from, to time.Time) ([]models.DayGoal, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	return s.days.ListByUserBetween(ctx, userID, from, to)
}

func (s *GoalService) update(ctx context.Context, userID uint, goal float64, apply func(*models.User)) (*Goals, error) {
	if err := validate.Struct(goalInput{Value: goal}); err != nil {
		return nil, ErrInvalidGoal
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	apply(u)
	snapshot := &models.DayGoal{
		UserID:       userID,
		Date:         dayStart(s.now(), s.loc),
		GoalCalories: u.GoalCalories,
		GoalWater:    u.GoalWater,
	}
	if err := s.users.SaveGoals(ctx, u, snapshot); err != nil {
		return nil, fmt.Errorf("save user goals: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Broadcast(userID, EventUserUpdated, u)
	}
	s.logger.Info("goals updated",
		zap.Uint("user_id", userID),
		zap.Float64("goal_calories", u.GoalCalories),
		zap.Float64("goal_water", u.GoalWater))

	return &Goals{Calories: u.GoalCalories, Water: u.GoalWater}, nil
}
