package controllers

import (
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Coach *services.CoachService
}

func NewChatController(cs *services.CoachService) *ChatController {
	return &ChatController{Coach: cs}
}

// POST /chat
func (cc *ChatController) Send(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := cc.Coach.Send(uid, strings.TrimSpace(req.Message))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// GET /chat
func (cc *ChatController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	msgs, err := cc.Coach.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// DELETE /chat
func (cc *ChatController) Clear(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := cc.Coach.Clear(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
