package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct {
	Food   *services.FoodService
	Vision *services.VisionService
}

func NewFoodController(food *services.FoodService, vision *services.VisionService) *FoodController {
	return &FoodController{Food: food, Vision: vision}
}

// POST /food
func (fc *FoodController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.FoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry, err := fc.Food.Add(uid, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /food
func (fc *FoodController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := fc.Food.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /food/:id
func (fc *FoodController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := fc.Food.Delete(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type AnalyzePhotoRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /food/analyze — photo in, structured calorie estimate out. The client
// shows the estimate for the user to confirm or edit before logging.
func (fc *FoodController) AnalyzePhoto(c *gin.Context) {
	var req AnalyzePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	est, err := fc.Vision.Estimate(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, est)
}
