package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(hs *services.HistoryService) *HistoryController {
	return &HistoryController{History: hs}
}

// GET /history?days=30 — day-grouped food and workout entries over the
// lookback window, newest day first, plus headline stats.
func (hc *HistoryController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	days := 30
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 || n > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = n
	}

	entries, err := hc.History.Entries(c.Request.Context(), uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	groups := services.BuildDayGroups(entries, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"days":    groups,
		"summary": services.Summarize(groups),
	})
}
