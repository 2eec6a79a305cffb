package product

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cache"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
)

//
// 🟢 POST /api/categories
//
func CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cat.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	cat.ID = gocql.TimeUUID()
	now := time.Now().UTC()
	cat.CreatedAt = &now

	err = session.Query(`INSERT INTO categories (category_id, name, image_url, created_at) VALUES (?, ?, ?, ?)`,
		cat.ID, cat.Name, cat.ImageURL, cat.CreatedAt).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création catégorie"})
		return
	}

	cache.InvalidateCatalogCache()

	c.JSON(http.StatusCreated, cat)
}

//
// 🔵 GET /api/categories
//
func GetAllCategories(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "categories:all"

	// Cache Redis
	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Category
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT category_id, name, image_url, created_at FROM categories`).Iter()

	var cats []models.Category
	var (
		id        gocql.UUID
		name, img string
		createdAt time.Time
	)
	for iter.Scan(&id, &name, &img, &createdAt) {
		created := createdAt
		cats = append(cats, models.Category{ID: id, Name: name, ImageURL: img, CreatedAt: &created})
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories"})
		return
	}

	if data, err := json.Marshal(cats); err == nil {
		database.RedisClient.Set(ctx, cacheKey, data, time.Hour)
	}

	c.JSON(http.StatusOK, cats)
}

//
// 🔍 GET /api/categories/:id
//
func GetCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var (
		name, img string
		createdAt time.Time
	)
	err = session.Query(`SELECT name, image_url, created_at FROM categories WHERE category_id = ?`,
		gocql.UUID(categoryID)).Scan(&name, &img, &createdAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	c.JSON(http.StatusOK, models.Category{
		ID:        gocql.UUID(categoryID),
		Name:      name,
		ImageURL:  img,
		CreatedAt: &createdAt,
	})
}

//
// ❌ DELETE /api/categories/:id
//
func DeleteCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var name string
	if err := session.Query(`SELECT name FROM categories WHERE category_id = ?`,
		gocql.UUID(categoryID)).Scan(&name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	if err := session.Query(`DELETE FROM categories WHERE category_id = ?`,
		gocql.UUID(categoryID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suppression impossible"})
		return
	}

	cache.InvalidateCatalogCache()

	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
