package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type ReportController struct {
	Reports *services.ReportService
	now     func() time.Time
	logger  *zap.Logger
}

func NewReportController(reports *services.ReportService, logger *zap.Logger) *ReportController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportController{Reports: reports, now: time.Now, logger: logger}
}

// Weekly returns the report for the week containing week_start (YYYY-MM-DD),
// or the current week when it is omitted.
func (rc *ReportController) Weekly(c *gin.Context) {
	day, ok := parseDate(c, "week_start", rc.Reports.Location(), rc.now())
	if !ok {
		return
	}
	report, err := rc.Reports.WeeklyReport(c.Request.Context(), userID(c), day)
	if err != nil {
		respondError(c, rc.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
