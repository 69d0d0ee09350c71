package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseDate reads a YYYY-MM-DD query param as midnight in loc. A missing param
// yields fallback.
func parseDate(c *gin.Context, name string, loc *time.Location, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

func parseDateRange(c *gin.Context, loc *time.Location) (from, to time.Time, ok bool) {
	if c.Query("from") == "" || c.Query("to") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'from' or 'to' query param"})
		return time.Time{}, time.Time{}, false
	}
	if from, ok = parseDate(c, "from", loc, time.Time{}); !ok {
		return
	}
	to, ok = parseDate(c, "to", loc, time.Time{})
	return
}
