package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/mocks"
	"nutritrack/models"
)

type fakePublisher struct {
	published []uint
	failFor   uint
}

func (p *fakePublisher) PublishWeeklyReport(ctx context.Context, userID uint, report *WeeklyReportResult) error {
	if userID == p.failFor {
		return errBoom
	}
	p.published = append(p.published, userID)
	return nil
}

func newDigestFixture(ids []uint, badUser uint) (*ReportScheduler, *fakeNotifier, *fakePublisher) {
	users := &mocks.MockUserStore{
		ListIDsFunc: func(ctx context.Context) ([]uint, error) { return ids, nil },
	}
	meals := &mocks.MockMealLogStore{
		ListByUserBetweenFunc: func(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error) {
			if userID == badUser {
				return nil, errBoom
			}
			return []models.MealLog{{EatenAt: from.Add(time.Hour), Meal: []models.FoodEntry{{Calories: float64(100 * userID)}}}}, nil
		},
	}
	reports := NewReportService(meals, &mocks.MockDayGoalStore{}, time.UTC, newTestLogger())
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	s := NewReportScheduler("0 20 * * 0", users, reports, notifier, publisher, newTestLogger())
	s.now = func() time.Time { return testNow }
	return s, notifier, publisher
}

func TestRunWeeklyDigest_AllUsers(t *testing.T) {
	s, notifier, publisher := newDigestFixture([]uint{1, 2}, 0)

	require.NoError(t, s.RunWeeklyDigest(context.Background()))

	require.Len(t, notifier.events, 2)
	assert.Equal(t, EventWeeklyReport, notifier.events[0].Kind)
	report := notifier.events[1].Payload.(*WeeklyReportResult)
	assert.Equal(t, "2024-01-08", report.WeekStart)
	assert.Equal(t, []models.DayReportRow{{Day: "Monday", Eaten: 200}}, report.GraphData)
	assert.Equal(t, []uint{1, 2}, publisher.published)
}

func TestRunWeeklyDigest_ContinuesPastFailures(t *testing.T) {
	s, notifier, publisher := newDigestFixture([]uint{1, 2, 3}, 2)
	publisher.failFor = 3

	err := s.RunWeeklyDigest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "user 2")
	assert.Contains(t, err.Error(), "user 3")

	assert.Len(t, notifier.events, 2) // users 1 and 3 reached listeners
	assert.Equal(t, []uint{1}, publisher.published)
}

func TestRunWeeklyDigest_CancelledContext(t *testing.T) {
	s, notifier, _ := newDigestFixture([]uint{1, 2}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.RunWeeklyDigest(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, notifier.events)
}

func TestReportScheduler_StartRejectsBadSchedule(t *testing.T) {
	s, _, _ := newDigestFixture(nil, 0)
	s.schedule = "not a cron schedule"

	assert.Error(t, s.Start())
}

func TestReportScheduler_StartStop(t *testing.T) {
	s, _, _ := newDigestFixture(nil, 0)

	require.NoError(t, s.Start())
	<-s.Stop().Done()
}
