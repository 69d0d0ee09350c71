package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/models"
)

// 2024-01-01 is a Monday.
func day(d, hour int) time.Time {
	return time.Date(2024, time.January, d, hour, 30, 0, 0, time.UTC)
}

func entry(kcal, protein, carbs, fats float64) models.FoodEntry {
	return models.FoodEntry{Calories: kcal, Protein: protein, Carbs: carbs, Fats: fats}
}

func TestCreateWeeklyReport_SameDayMeals(t *testing.T) {
	meals := []models.MealLog{
		{EatenAt: day(1, 8), Meal: []models.FoodEntry{entry(500, 20, 50, 10)}},
		{EatenAt: day(1, 19), Meal: []models.FoodEntry{entry(300, 10, 30, 5)}},
	}
	days := []models.DayGoal{{Date: day(1, 0), GoalCalories: 2000}}

	report, err := CreateWeeklyReportIn(time.UTC, meals, days)
	require.NoError(t, err)

	assert.Equal(t, models.NutrientAverages{Calories: 400, Protein: 15, Carbs: 40, Fats: 7.5}, report.Averages)
	assert.Equal(t, []models.DayReportRow{{Day: "Monday", Eaten: 800, Goal: 2000}}, report.GraphData)
}

func TestCreateWeeklyReport_GoalOnlyDay(t *testing.T) {
	days := []models.DayGoal{{Date: day(2, 0), GoalCalories: 1800}}

	report, err := CreateWeeklyReportIn(time.UTC, nil, days)
	require.NoError(t, err)

	assert.Equal(t, models.NutrientAverages{}, report.Averages)
	assert.Equal(t, []models.DayReportRow{{Day: "Tuesday", Eaten: 0, Goal: 1800}}, report.GraphData)
}

func TestCreateWeeklyReport_DuplicateGoalLastWins(t *testing.T) {
	days := []models.DayGoal{
		{Date: day(3, 0), GoalCalories: 1500},
		{Date: day(3, 12), GoalCalories: 1600},
	}

	report, err := CreateWeeklyReportIn(time.UTC, nil, days)
	require.NoError(t, err)

	require.Len(t, report.GraphData, 1)
	assert.Equal(t, "Wednesday", report.GraphData[0].Day)
	assert.Equal(t, 1600.0, report.GraphData[0].Goal)
}

func TestCreateWeeklyReport_EmptyInputs(t *testing.T) {
	report, err := CreateWeeklyReportIn(time.UTC, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.NutrientAverages{}, report.Averages)
	assert.NotNil(t, report.GraphData)
	assert.Empty(t, report.GraphData)
}

func TestCreateWeeklyReport_MealWithoutEntries(t *testing.T) {
	meals := []models.MealLog{{EatenAt: day(4, 9)}}

	report, err := CreateWeeklyReportIn(time.UTC, meals, nil)
	require.NoError(t, err)

	assert.Equal(t, models.NutrientAverages{}, report.Averages)
	assert.Equal(t, []models.DayReportRow{{Day: "Thursday", Eaten: 0, Goal: 0}}, report.GraphData)
}

func TestCreateWeeklyReport_RowOrderAndTotals(t *testing.T) {
	meals := []models.MealLog{
		{EatenAt: day(5, 8), Meal: []models.FoodEntry{entry(200, 5, 20, 3), entry(100, 1, 10, 1)}},
		{EatenAt: day(2, 8), Meal: []models.FoodEntry{entry(450, 30, 40, 12)}},
		{EatenAt: day(5, 20), Meal: []models.FoodEntry{entry(650, 35, 60, 20)}},
	}
	days := []models.DayGoal{
		{Date: day(7, 0), GoalCalories: 2500},
		{Date: day(2, 0), GoalCalories: 2100},
		{Date: day(1, 0), GoalCalories: 2000},
	}

	report, err := CreateWeeklyReportIn(time.UTC, meals, days)
	require.NoError(t, err)

	assert.Equal(t, []models.DayReportRow{
		{Day: "Friday", Eaten: 950, Goal: 0},
		{Day: "Tuesday", Eaten: 450, Goal: 2100},
		{Day: "Sunday", Eaten: 0, Goal: 2500},
		{Day: "Monday", Eaten: 0, Goal: 2000},
	}, report.GraphData)

	var rowTotal, entryTotal float64
	for _, r := range report.GraphData {
		rowTotal += r.Eaten
	}
	for _, m := range meals {
		for _, e := range m.Meal {
			entryTotal += e.Calories
		}
	}
	assert.Equal(t, entryTotal, rowTotal)
	assert.InDelta(t, 350.0, report.Averages.Calories, 1e-9)
	assert.InDelta(t, 17.75, report.Averages.Protein, 1e-9)
}

func TestCreateWeeklyReport_AveragesIgnoreDocumentGrouping(t *testing.T) {
	grouped := []models.MealLog{
		{EatenAt: day(1, 8), Meal: []models.FoodEntry{entry(100, 1, 2, 3), entry(300, 3, 4, 5)}},
		{EatenAt: day(2, 8), Meal: []models.FoodEntry{entry(200, 2, 3, 4)}},
	}
	split := []models.MealLog{
		{EatenAt: day(3, 8), Meal: []models.FoodEntry{entry(200, 2, 3, 4)}},
		{EatenAt: day(3, 9), Meal: []models.FoodEntry{entry(300, 3, 4, 5)}},
		{EatenAt: day(4, 8), Meal: []models.FoodEntry{entry(100, 1, 2, 3)}},
	}

	a, err := CreateWeeklyReportIn(time.UTC, grouped, nil)
	require.NoError(t, err)
	b, err := CreateWeeklyReportIn(time.UTC, split, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Averages, b.Averages)
	assert.Equal(t, models.NutrientAverages{Calories: 200, Protein: 2, Carbs: 3, Fats: 4}, a.Averages)
}

func TestCreateWeeklyReport_DoesNotMutateInputs(t *testing.T) {
	meals := []models.MealLog{{EatenAt: day(1, 8), Meal: []models.FoodEntry{entry(500, 20, 50, 10)}}}
	days := []models.DayGoal{{Date: day(1, 0), GoalCalories: 2000}}

	_, err := CreateWeeklyReportIn(time.UTC, meals, days)
	require.NoError(t, err)

	assert.Equal(t, 500.0, meals[0].Meal[0].Calories)
	assert.Equal(t, 2000.0, days[0].GoalCalories)
}

func TestCreateWeeklyReport_MalformedRecords(t *testing.T) {
	cases := []struct {
		name  string
		meals []models.MealLog
		days  []models.DayGoal
		want  RecordError
	}{
		{
			name:  "missing eatenAt",
			meals: []models.MealLog{{Meal: []models.FoodEntry{entry(1, 1, 1, 1)}}},
			want:  RecordError{Collection: "meal", Index: 0, Entry: -1, Field: "eatenAt"},
		},
		{
			name: "NaN protein",
			meals: []models.MealLog{
				{EatenAt: day(1, 8), Meal: []models.FoodEntry{entry(1, 1, 1, 1)}},
				{EatenAt: day(1, 9), Meal: []models.FoodEntry{entry(1, 1, 1, 1), entry(1, math.NaN(), 1, 1)}},
			},
			want: RecordError{Collection: "meal", Index: 1, Entry: 1, Field: "protein"},
		},
		{
			name:  "infinite fats",
			meals: []models.MealLog{{EatenAt: day(1, 8), Meal: []models.FoodEntry{entry(1, 1, 1, math.Inf(1))}}},
			want:  RecordError{Collection: "meal", Index: 0, Entry: 0, Field: "fats"},
		},
		{
			name: "missing goal date",
			days: []models.DayGoal{{Date: day(1, 0), GoalCalories: 1}, {GoalCalories: 2}},
			want: RecordError{Collection: "day", Index: 1, Entry: -1, Field: "date"},
		},
		{
			name: "negative goal",
			days: []models.DayGoal{{Date: day(1, 0), GoalCalories: -5}},
			want: RecordError{Collection: "day", Index: 0, Entry: -1, Field: "goalCalories"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := CreateWeeklyReportIn(time.UTC, tc.meals, tc.days)
			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, ErrMalformedRecord))

			var rerr *RecordError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tc.want.Collection, rerr.Collection)
			assert.Equal(t, tc.want.Index, rerr.Index)
			assert.Equal(t, tc.want.Entry, rerr.Entry)
			assert.Equal(t, tc.want.Field, rerr.Field)
		})
	}
}

func TestWeekdayKey(t *testing.T) {
	east := time.FixedZone("CEST", 2*60*60)

	// 23:30 UTC on Monday is already Tuesday two hours east.
	late := time.Date(2024, time.January, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "Monday", WeekdayKey(late, time.UTC))
	assert.Equal(t, "Tuesday", WeekdayKey(late, east))

	morning := time.Date(2024, time.January, 1, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, WeekdayKey(morning, time.UTC), WeekdayKey(late, time.UTC))
	assert.Equal(t, WeekdayKey(late, east), WeekdayKey(late, east))
}
