package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /upload — stores a meal photo and returns its durable URL. Clients
// upload first, then attach the URL to a food entry.
func UploadImage(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64Image(req.ImageBase64, "meal-photos")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
