package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type ShoppingListController struct {
	List   *services.ShoppingListService
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewShoppingListController(list *services.ShoppingListService, loc *time.Location, logger *zap.Logger) *ShoppingListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ShoppingListController{List: list, loc: loc, now: time.Now, logger: logger}
}

type shoppingItemRequest struct {
	Food    string `json:"food" binding:"required"`
	Portion string `json:"portion"`
}

func (sc *ShoppingListController) Get(c *gin.Context) {
	list, err := sc.List.GetList(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateAmount takes the amount as the raw text the user typed.
func (sc *ShoppingListController) UpdateAmount(c *gin.Context) {
	var req struct {
		shoppingItemRequest
		Amount string `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := sc.List.UpdateAmount(c.Request.Context(), userID(c), req.Food, req.Portion, req.Amount)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (sc *ShoppingListController) Toggle(c *gin.Context) {
	var req struct {
		shoppingItemRequest
		Checked bool `json:"checked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := sc.List.ToggleChecked(c.Request.Context(), userID(c), req.Food, req.Portion, req.Checked)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Refresh rebuilds the list from meals logged between from and to
// (YYYY-MM-DD, to exclusive). Without them the current week is used.
func (sc *ShoppingListController) Refresh(c *gin.Context) {
	weekStart := services.StartOfWeek(sc.now(), sc.loc)
	from, ok := parseDate(c, "from", sc.loc, weekStart)
	if !ok {
		return
	}
	to, ok := parseDate(c, "to", sc.loc, weekStart.AddDate(0, 0, 7))
	if !ok {
		return
	}
	list, err := sc.List.Refresh(c.Request.Context(), userID(c), from, to)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
