package models

import "gorm.io/gorm"

type ShoppingListItem struct {
	gorm.Model
	UserID  uint    `gorm:"uniqueIndex:idx_shopping_user_food_portion;not null" json:"user_id"`
	Food    string  `gorm:"uniqueIndex:idx_shopping_user_food_portion;not null" json:"food"`
	Portion string  `gorm:"uniqueIndex:idx_shopping_user_food_portion" json:"portion"`
	Amount  float64 `json:"amount"`
	Checked bool    `json:"checked"`
}
