package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grocerly_back_end/internal/services"
)

//
// 🖼️ POST /api/products/image — upload d'image produit vers MinIO
//
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' manquant"})
		return
	}

	objectPath, err := services.UploadProductImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image enregistrée",
		"path":    objectPath,
	})
}
