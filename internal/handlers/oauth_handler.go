package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/markbates/goth/gothic"

	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
	"grocerly_back_end/internal/utils"
)

//
// 🔑 GET /api/auth/:provider — démarre le flow OAuth (Google/Facebook)
//
func BeginOAuth(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🔑 GET /api/auth/:provider/callback
//
func OAuthCallback(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Erreur OAuth: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification échouée"})
		return
	}

	userID, role, err := findOrCreateOAuthProfile(gothUser.Name, gothUser.Email, gothUser.Provider)
	if err != nil {
		log.Printf("❌ Erreur création profil OAuth: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, err := utils.GenerateJWT(models.User{
		ID:       userID.String(),
		Name:     gothUser.Name,
		Email:    gothUser.Email,
		Role:     role,
		Provider: gothUser.Provider,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	// Redirection vers l'app mobile avec le token
	redirect := os.Getenv("OAUTH_SUCCESS_REDIRECT")
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, redirect+"?token="+token)
}

//
// 🔑 GET /api/auth/:provider/url — URL d'autorisation pour le flow natif
//
func OAuthNativeURL(c *gin.Context) {
	provider, ok := Providers[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider inconnu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": provider.GetAuthURL(c.Query("state"))})
}

//
// 🔑 POST /api/auth/:provider/token — échange du code (flow natif Expo)
//
// L'app mobile récupère elle-même le code d'autorisation via AuthSession
// et l'échange ici contre un JWT, sans cookies de session.
func OAuthNativeExchange(c *gin.Context) {
	provider, ok := Providers[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider inconnu"})
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	oauthToken, err := provider.Exchange(input.Code)
	if err != nil {
		log.Printf("❌ Erreur échange code %s: %v", provider.Name, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification échouée"})
		return
	}

	info, err := provider.FetchUserInfo(oauthToken)
	if err != nil || info.Email == "" {
		log.Printf("❌ Erreur userinfo %s: %v", provider.Name, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification échouée"})
		return
	}

	userID, role, err := findOrCreateOAuthProfile(info.Name, info.Email, provider.Name)
	if err != nil {
		log.Printf("❌ Erreur création profil OAuth: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, err := utils.GenerateJWT(models.User{
		ID:       userID.String(),
		Name:     info.Name,
		Email:    info.Email,
		Role:     role,
		Provider: provider.Name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// findOrCreateOAuthProfile retrouve le profil lié à ce compte OAuth,
// ou le crée au premier login
func findOrCreateOAuthProfile(name, email, provider string) (gocql.UUID, string, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return gocql.UUID{}, "", err
	}

	var userID gocql.UUID
	var role string
	err = session.Query(`SELECT user_id, role FROM profiles WHERE email = ? AND provider = ? ALLOW FILTERING`,
		email, provider).Scan(&userID, &role)
	if err == nil {
		return userID, role, nil
	}

	userID = gocql.TimeUUID()
	role = "customer"
	err = session.Query(`INSERT INTO profiles (user_id, name, email, phone, address, password, provider, role)
	                     VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, name, email, "", "", "", provider, role).Exec()
	if err != nil {
		return gocql.UUID{}, "", err
	}

	log.Printf("✅ Profil créé via %s: %s", provider, email)
	return userID, role, nil
}
