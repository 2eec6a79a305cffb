package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin protège les mutations du catalogue (création/suppression
// de produits et catégories). À placer après AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
