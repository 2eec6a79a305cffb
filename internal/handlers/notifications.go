package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grocerly_back_end/internal/cache"
)

//
// 📱 POST /api/notifications/register
//
// L'app enregistre son token Expo pour recevoir les annonces catalogue.
func RegisterPushToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !cache.RegisterPushToken(input.Token) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token Expo invalide"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token enregistré"})
}

//
// 📱 DELETE /api/notifications/register
//
func UnregisterPushToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cache.RemovePushToken(input.Token)
	c.JSON(http.StatusOK, gin.H{"message": "Token supprimé"})
}
