package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cache"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
)

//
// 👤 GET /api/profile/me
//
func GetMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	profile, err := cache.GetProfileFromCache(userID)
	if err != nil {
		log.Printf("❌ Erreur récupération profil %s: %v", userID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

//
// ✏️ PUT /api/profile — édition d'un champ du profil
//
// L'écran profil autorise les valeurs vides (effacement d'un champ).
// La validation stricte d'adresse n'a lieu qu'au checkout.
func UpdateProfileField(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	field, err := models.ParseProfileField(input.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ de profil inconnu"})
		return
	}

	profile, err := cache.GetProfileFromCache(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	if err := profile.SetField(field, input.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ de profil inconnu"})
		return
	}

	if err := persistProfile(profile); err != nil {
		log.Printf("❌ Erreur sauvegarde profil %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde profil"})
		return
	}
	cache.InvalidateProfileCache(userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Profil mis à jour",
		"profile": profile,
	})
}

func persistProfile(p *models.Profile) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	uid, err := uuid.Parse(p.UserID)
	if err != nil {
		return err
	}

	return session.Query(`UPDATE profiles SET name = ?, email = ?, phone = ?, address = ? WHERE user_id = ?`,
		p.Name, p.Email, p.Phone, p.Address, gocql.UUID(uid)).Exec()
}
