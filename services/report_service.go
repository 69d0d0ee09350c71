package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nutritrack/models"
	"nutritrack/utils"
)

// WeeklyReportResult is a weekly report together with the Monday it starts on.
type WeeklyReportResult struct {
	WeekStart string `json:"week_start"`
	models.WeeklyReport
}

type ReportService struct {
	meals  MealLogStore
	days   DayGoalStore
	loc    *time.Location
	logger *zap.Logger
}

func NewReportService(meals MealLogStore, days DayGoalStore, loc *time.Location, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{meals: meals, days: days, loc: loc, logger: logger}
}

// Location is the zone weekdays are resolved in.
func (s *ReportService) Location() *time.Location { return s.loc }

// WeeklyReport aggregates the Monday-to-Sunday week containing day. The window
// never spans more than seven days, so weekday keys stay unique.
func (s *ReportService) WeeklyReport(ctx context.Context, userID uint, day time.Time) (*WeeklyReportResult, error) {
	from := StartOfWeek(day, s.loc)
	to := from.AddDate(0, 0, 7)

	meals, err := s.meals.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load meal logs: %w", err)
	}
	goals, err := s.days.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load day goals: %w", err)
	}

	report, err := utils.CreateWeeklyReportIn(s.loc, meals, goals)
	if err != nil {
		s.logger.Warn("weekly report rejected input",
			zap.Uint("user_id", userID),
			zap.Time("week_start", from),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("weekly report built",
		zap.Uint("user_id", userID),
		zap.Int("meal_logs", len(meals)),
		zap.Int("day_goals", len(goals)),
		zap.Int("rows", len(report.GraphData)))

	return &WeeklyReportResult{
		WeekStart:    from.Format("2006-01-02"),
		WeeklyReport: *report,
	}, nil
}
