package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/controllers"
	"nutritrack/middlewares"
)

// Controllers groups everything the router dispatches to.
type Controllers struct {
	Users    *controllers.UserController
	Goals    *controllers.GoalController
	Meals    *controllers.MealLogController
	Reports  *controllers.ReportController
	Shopping *controllers.ShoppingListController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctl Controllers, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORS(corsOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/users", ctl.Users.Create)

	user := r.Group("/users/:userID")
	user.Use(middlewares.UserContext())
	{
		user.GET("", ctl.Users.Get)

		user.GET("/goals", ctl.Goals.Get)
		user.PUT("/goals/calories", ctl.Goals.UpdateCalories)
		user.PUT("/goals/water", ctl.Goals.UpdateWater)
		user.GET("/goals/days", ctl.Goals.ListDays)

		user.POST("/meals", ctl.Meals.Create)
		user.GET("/meals", ctl.Meals.List)
		user.DELETE("/meals/:mealID", ctl.Meals.Delete)

		user.GET("/reports/weekly", ctl.Reports.Weekly)

		user.GET("/shopping-list", ctl.Shopping.Get)
		user.PUT("/shopping-list/amount", ctl.Shopping.UpdateAmount)
		user.PUT("/shopping-list/toggle", ctl.Shopping.Toggle)
		user.POST("/shopping-list/refresh", ctl.Shopping.Refresh)

		user.GET("/ws", ctl.Realtime.Listen)
	}

	if logger != nil {
		logger.Info("router initialized")
	}
	return r
}
