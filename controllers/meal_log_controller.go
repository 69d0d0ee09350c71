package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type MealLogController struct {
	Meals  *services.MealLogService
	loc    *time.Location
	logger *zap.Logger
}

func NewMealLogController(meals *services.MealLogService, loc *time.Location, logger *zap.Logger) *MealLogController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &MealLogController{Meals: meals, loc: loc, logger: logger}
}

func (mc *MealLogController) Create(c *gin.Context) {
	var req services.MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := mc.Meals.LogMeal(c.Request.Context(), userID(c), req)
	if err != nil {
		respondError(c, mc.logger, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (mc *MealLogController) List(c *gin.Context) {
	from, to, ok := parseDateRange(c, mc.loc)
	if !ok {
		return
	}
	logs, err := mc.Meals.ListMealLogs(c.Request.Context(), userID(c), from, to)
	if err != nil {
		respondError(c, mc.logger, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (mc *MealLogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mealID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	if err := mc.Meals.DeleteMealLog(c.Request.Context(), userID(c), uint(id)); err != nil {
		respondError(c, mc.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
