// Package stores implements the service store contracts on gorm/postgres.
package stores

import "nutritrack/services"

var (
	_ services.UserStore         = (*UserStore)(nil)
	_ services.MealLogStore      = (*MealLogStore)(nil)
	_ services.DayGoalStore      = (*DayGoalStore)(nil)
	_ services.ShoppingListStore = (*ShoppingListStore)(nil)
)
