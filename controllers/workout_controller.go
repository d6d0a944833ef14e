package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(ws *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: ws}
}

type LogWorkoutRequest struct {
	Activity        string    `json:"activity" binding:"required"`
	Name            string    `json:"name"`
	DurationSeconds int       `json:"duration_seconds" binding:"required"`
	LoggedAt        time.Time `json:"logged_at"`
}

// POST /workouts
func (wc *WorkoutController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	w, err := wc.Workouts.Add(uid, req.Activity, req.Name, req.DurationSeconds, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, w)
}

// GET /workouts
func (wc *WorkoutController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	workouts, err := wc.Workouts.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// DELETE /workouts/:id
func (wc *WorkoutController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := wc.Workouts.Delete(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
