package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(gs *services.GoalService) *GoalController {
	return &GoalController{Goals: gs}
}

// GET /goal
func (gc *GoalController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := gc.Goals.Get(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	progress, err := gc.Goals.Progress(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": progress})
}

// PUT /goal
func (gc *GoalController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Calories int `json:"calories" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	goal, err := gc.Goals.Upsert(uid, req.Calories)
	if err != nil {
		if errors.Is(err, services.ErrGoalOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
