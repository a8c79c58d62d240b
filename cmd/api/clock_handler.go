package api

import (
	"net/http"
	"time"

	"household-backend/internal/dailystatus"

	"github.com/gin-gonic/gin"
)

// ClockHandler reports the service's notion of now
type ClockHandler struct {
	clock dailystatus.Clock
}

func NewClockHandler(clock dailystatus.Clock) *ClockHandler {
	return &ClockHandler{clock: clock}
}

// GetClock returns the time, today's key and the time-of-day bucket
// GET /api/clock
func (h *ClockHandler) GetClock(c *gin.Context) {
	now := h.clock.Now()
	tod := dailystatus.TimeOfDayAt(now)
	c.JSON(http.StatusOK, gin.H{
		"now":         now.Format(time.RFC3339),
		"date_key":    dailystatus.TodayKey(h.clock),
		"time_of_day": tod,
		"greeting":    tod.Greeting(),
	})
}
