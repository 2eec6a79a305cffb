package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cache"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/services"
)

//
// ❌ DELETE /api/products/id/:id
//
func DeleteProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifie que le produit existe avant de supprimer
	var name string
	if err := session.Query(`SELECT name FROM products WHERE product_id = ?`,
		gocql.UUID(productID)).Scan(&name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`,
		gocql.UUID(productID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suppression impossible"})
		return
	}

	cache.InvalidateCatalogCache()
	go services.RemoveProductFromIndex(productID.String())

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé", "name": name})
}

//
// 🧹 DELETE /api/products — vide le catalogue (admin)
//
func DeleteAllProducts(c *gin.Context) {
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`TRUNCATE products`).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produits"})
		return
	}

	cache.InvalidateCatalogCache()

	c.JSON(http.StatusOK, gin.H{"message": "Tous les produits ont été supprimés"})
}
