package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"nutritrack/models"
)

type ShoppingListEntry struct {
	Amount  float64 `json:"amount"`
	Checked bool    `json:"checked"`
}

// ShoppingList is keyed by food, then by portion.
type ShoppingList map[string]map[string]ShoppingListEntry

type amountInput struct {
	Value float64 `validate:"gte=0,lte=10000"`
}

type ShoppingListService struct {
	items  ShoppingListStore
	meals  MealLogStore
	logger *zap.Logger
}

func NewShoppingListService(items ShoppingListStore, meals MealLogStore, logger *zap.Logger) *ShoppingListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShoppingListService{items: items, meals: meals, logger: logger}
}

func (s *ShoppingListService) GetList(ctx context.Context, userID uint) (ShoppingList, error) {
	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return groupShoppingList(items), nil
}

// UpdateAmount parses amount as typed by the user and stores it on the item.
// Checked items are returned unchanged.
func (s *ShoppingListService) UpdateAmount(ctx context.Context, userID uint, food, portion, amount string) (*models.ShoppingListItem, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if err := validate.Struct(amountInput{Value: v}); err != nil {
		return nil, ErrInvalidAmount
	}

	item, err := s.items.Find(ctx, userID, food, portion)
	if err != nil {
		return nil, err
	}
	if item.Checked {
		// checked items are already bought; their amount is frozen
		return item, nil
	}
	item.Amount = v
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save shopping item: %w", err)
	}
	return item, nil
}

// ToggleChecked flips the item given the checked state the caller last saw.
func (s *ShoppingListService) ToggleChecked(ctx context.Context, userID uint, food, portion string, checked bool) (*models.ShoppingListItem, error) {
	item, err := s.items.Find(ctx, userID, food, portion)
	if err != nil {
		return nil, err
	}
	item.Checked = !checked
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save shopping item: %w", err)
	}
	return item, nil
}

// Refresh rebuilds the list from the foods logged in [from, to). Each amount
// is the number of times that food and portion was eaten; checked flags survive
// for pairs that are still on the list.
func (s *ShoppingListService) Refresh(ctx context.Context, userID uint, from, to time.Time) (ShoppingList, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	meals, err := s.meals.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load meal logs: %w", err)
	}
	current, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	previous := groupShoppingList(current)

	type key struct{ food, portion string }
	var order []key
	counts := map[key]float64{}
	for _, m := range meals {
		for _, e := range m.Meal {
			k := key{food: e.Label, portion: e.Portion}
			if _, ok := counts[k]; !ok {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	items := make([]models.ShoppingListItem, 0, len(order))
	for _, k := range order {
		items = append(items, models.ShoppingListItem{
			UserID:  userID,
			Food:    k.food,
			Portion: k.portion,
			Amount:  counts[k],
			Checked: previous[k.food][k.portion].Checked,
		})
	}
	if err := s.items.ReplaceForUser(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("replace shopping list: %w", err)
	}

	s.logger.Info("shopping list refreshed", zap.Uint("user_id", userID), zap.Int("items", len(items)))
	return groupShoppingList(items), nil
}

func groupShoppingList(items []models.ShoppingListItem) ShoppingList {
	out := ShoppingList{}
	for _, it := range items {
		if out[it.Food] == nil {
			out[it.Food] = map[string]ShoppingListEntry{}
		}
		out[it.Food][it.Portion] = ShoppingListEntry{Amount: it.Amount, Checked: it.Checked}
	}
	return out
}
