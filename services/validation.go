package services

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidGoal   = errors.New("goal must be a number between 0 and 100000")
	ErrInvalidAmount = errors.New("amount must be a number between 0 and 10000")
	ErrInvalidMeal   = errors.New("invalid meal log")
	ErrInvalidUser   = errors.New("invalid user")
	ErrInvalidRange  = errors.New("invalid date range")
)

var validate = validator.New()

func dayStart(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns local midnight of the Monday on or before t.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	d := dayStart(t, loc)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}

func checkRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !to.After(from) {
		return ErrInvalidRange
	}
	return nil
}
