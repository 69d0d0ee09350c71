package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type GoalController struct {
	Goals  *services.GoalService
	loc    *time.Location
	logger *zap.Logger
}

func NewGoalController(goals *services.GoalService, loc *time.Location, logger *zap.Logger) *GoalController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &GoalController{Goals: goals, loc: loc, logger: logger}
}

type goalRequest struct {
	Goal *float64 `json:"goal" binding:"required"`
}

func (gc *GoalController) Get(c *gin.Context) {
	goals, err := gc.Goals.GetGoals(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, gc.logger, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) UpdateCalories(c *gin.Context) {
	gc.update(c, gc.Goals.UpdateCalorieGoal)
}

func (gc *GoalController) UpdateWater(c *gin.Context) {
	gc.update(c, gc.Goals.UpdateWaterGoal)
}

func (gc *GoalController) update(c *gin.Context, apply func(ctx context.Context, userID uint, goal float64) (*services.Goals, error)) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"goal\": <number>}"})
		return
	}
	goals, err := apply(c.Request.Context(), userID(c), *req.Goal)
	if err != nil {
		respondError(c, gc.logger, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// ListDays returns the per-day goal snapshots in [from, to). Both query params
// are YYYY-MM-DD; to is exclusive.
func (gc *GoalController) ListDays(c *gin.Context) {
	from, to, ok := parseDateRange(c, gc.loc)
	if !ok {
		return
	}
	days, err := gc.Goals.ListDayGoals(c.Request.Context(), userID(c), from, to)
	if err != nil {
		respondError(c, gc.logger, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
