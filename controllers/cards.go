package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCard returns the card dealt to a player.
// GET /api/players/:id/card
func GetCard(c *gin.Context) {
	card, err := Service.CardForPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// MarkNumber flags a drawn number on a card.
// POST /api/cards/:id/mark {"number": 42}
func MarkNumber(c *gin.Context) {
	var req struct {
		Number int `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := Service.MarkNumber(c.Request.Context(), c.Param("id"), req.Number)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
