package utils

import (
	"errors"
	"fmt"
	"math"
	"time"

	"nutritrack/models"
)

// ErrMalformedRecord is wrapped by every RecordError returned from the report builders.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError identifies the document (and food entry, when relevant) that
// stopped an aggregation.
type RecordError struct {
	Collection string // "meal" or "day"
	Index      int
	Entry      int // -1 when the problem is on the document itself
	Field      string
	Reason     string
}

func (e *RecordError) Error() string {
	if e.Entry >= 0 {
		return fmt.Sprintf("%s document %d, entry %d: %s %s", e.Collection, e.Index, e.Entry, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s document %d: %s %s", e.Collection, e.Index, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

// WeekdayKey truncates t to the start of its calendar day in loc and returns
// the full weekday name, e.g. "Monday".
func WeekdayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc).Format("Monday")
}

// CreateWeeklyReport aggregates meal logs and day goals using the process-local time zone.
func CreateWeeklyReport(meals []models.MealLog, days []models.DayGoal) (*models.WeeklyReport, error) {
	return CreateWeeklyReportIn(time.Local, meals, days)
}

// CreateWeeklyReportIn builds the nutrient averages over every food entry and
// the eaten-vs-goal series keyed by weekday in loc. Inputs are read only.
//
// Rows follow the order in which weekdays are first seen in meals, then in
// days. When several day goals fall on the same weekday the last one wins.
func CreateWeeklyReportIn(loc *time.Location, meals []models.MealLog, days []models.DayGoal) (*models.WeeklyReport, error) {
	if err := validateMeals(meals); err != nil {
		return nil, err
	}
	if err := validateDays(days); err != nil {
		return nil, err
	}

	eaten := caloriesByDay(meals, loc)
	goals := goalsByDay(days, loc)

	return &models.WeeklyReport{
		Averages:  averageNutrients(meals),
		GraphData: graphData(eaten, goals),
	}, nil
}

// dayTotals maps weekday keys to values and remembers first-insertion order.
type dayTotals struct {
	keys   []string
	values map[string]float64
}

func newDayTotals() dayTotals {
	return dayTotals{values: map[string]float64{}}
}

func (d dayTotals) add(key string, v float64) dayTotals {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] += v
	return d
}

func (d dayTotals) set(key string, v float64) dayTotals {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
	return d
}

func averageNutrients(meals []models.MealLog) models.NutrientAverages {
	var sum models.NutrientAverages
	n := 0
	for _, m := range meals {
		for _, e := range m.Meal {
			sum.Calories += e.Calories
			sum.Protein += e.Protein
			sum.Carbs += e.Carbs
			sum.Fats += e.Fats
			n++
		}
	}
	if n == 0 {
		return models.NutrientAverages{}
	}
	den := float64(n)
	return models.NutrientAverages{
		Calories: sum.Calories / den,
		Protein:  sum.Protein / den,
		Carbs:    sum.Carbs / den,
		Fats:     sum.Fats / den,
	}
}

func caloriesByDay(meals []models.MealLog, loc *time.Location) dayTotals {
	totals := newDayTotals()
	for _, m := range meals {
		var kcal float64
		for _, e := range m.Meal {
			kcal += e.Calories
		}
		totals = totals.add(WeekdayKey(m.EatenAt, loc), kcal)
	}
	return totals
}

func goalsByDay(days []models.DayGoal, loc *time.Location) dayTotals {
	goals := newDayTotals()
	for _, d := range days {
		goals = goals.set(WeekdayKey(d.Date, loc), d.GoalCalories)
	}
	return goals
}

func graphData(eaten, goals dayTotals) []models.DayReportRow {
	rows := make([]models.DayReportRow, 0, len(eaten.keys)+len(goals.keys))
	seen := make(map[string]struct{}, len(eaten.keys)+len(goals.keys))
	for _, keys := range [][]string{eaten.keys, goals.keys} {
		for _, day := range keys {
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			rows = append(rows, models.DayReportRow{
				Day:   day,
				Eaten: eaten.values[day],
				Goal:  goals.values[day],
			})
		}
	}
	return rows
}

func validateMeals(meals []models.MealLog) error {
	for i, m := range meals {
		if m.EatenAt.IsZero() {
			return &RecordError{Collection: "meal", Index: i, Entry: -1, Field: "eatenAt", Reason: "is missing"}
		}
		for j, e := range m.Meal {
			for _, f := range []struct {
				name string
				v    float64
			}{
				{"calories", e.Calories},
				{"protein", e.Protein},
				{"carbs", e.Carbs},
				{"fats", e.Fats},
			} {
				if reason := badNumber(f.v); reason != "" {
					return &RecordError{Collection: "meal", Index: i, Entry: j, Field: f.name, Reason: reason}
				}
			}
		}
	}
	return nil
}

func validateDays(days []models.DayGoal) error {
	for i, d := range days {
		if d.Date.IsZero() {
			return &RecordError{Collection: "day", Index: i, Entry: -1, Field: "date", Reason: "is missing"}
		}
		if reason := badNumber(d.GoalCalories); reason != "" {
			return &RecordError{Collection: "day", Index: i, Entry: -1, Field: "goalCalories", Reason: reason}
		}
	}
	return nil
}

func badNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "is not a number"
	case math.IsInf(v, 0):
		return "is infinite"
	case v < 0:
		return "is negative"
	}
	return ""
}
