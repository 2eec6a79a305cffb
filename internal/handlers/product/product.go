package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cache"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
	"grocerly_back_end/internal/services"
)

//
// 🟢 POST /api/products
//
func CreateProduct(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Price        string `json:"price" binding:"required"`
		Image        string `json:"image"`
		MainCategory string `json:"main_category"`
		SubCategory  string `json:"sub_category"`
		Description  string `json:"description"`
		Weight       string `json:"weight"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ✅ Le prix texte du formulaire est validé ici, à l'ingestion :
	// un prix illisible est refusé, jamais enregistré à zéro.
	price, err := models.ParsePrice(input.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix invalide: " + input.Price})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	p := models.Product{
		ID:           gocql.TimeUUID(),
		Name:         input.Name,
		Price:        price,
		ImageURL:     input.Image,
		MainCategory: input.MainCategory,
		SubCategory:  input.SubCategory,
		Description:  input.Description,
		Weight:       input.Weight,
		CreatedAt:    time.Now().UTC(),
	}

	err = session.Query(`INSERT INTO products (product_id, name, price, image_url, main_category, sub_category, description, weight, created_at)
	                     VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, int64(p.Price), p.ImageURL, p.MainCategory, p.SubCategory,
		p.Description, p.Weight, p.CreatedAt).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache()

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	// 📱 Le catalogue informe les appareils, il ne les consulte pas
	go services.NotifyNewProduct(p.Name)

	log.Printf("✅ Produit créé: %s (%s€)", p.Name, p.Price)
	c.JSON(http.StatusCreated, p)
}

func scanProducts(iter *gocql.Iter) []models.Product {
	var products []models.Product
	var (
		id                                                   gocql.UUID
		name, imageURL, mainCat, subCat, description, weight string
		price                                                int64
		createdAt                                            time.Time
	)
	for iter.Scan(&id, &name, &price, &imageURL, &mainCat, &subCat, &description, &weight, &createdAt) {
		products = append(products, models.Product{
			ID:           id,
			Name:         name,
			Price:        models.Cents(price),
			ImageURL:     imageURL,
			MainCategory: mainCat,
			SubCategory:  subCat,
			Description:  description,
			Weight:       weight,
			CreatedAt:    createdAt,
		})
	}
	return products
}

const productColumns = `product_id, name, price, image_url, main_category, sub_category, description, weight, created_at`

//
// 🔵 GET /api/products
//
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "products:all"

	// ✅ Vérifie le cache Redis
	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
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

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()
	products := scanProducts(iter)
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	// ✅ Met en cache
	if data, err := json.Marshal(products); err == nil {
		database.RedisClient.Set(ctx, cacheKey, data, time.Hour)
	}

	c.JSON(http.StatusOK, products)
}

//
// 🔍 GET /api/products/filter?main_category=...&sub_category=...&search=...
//
func FilterProducts(c *gin.Context) {
	mainCategory := c.Query("main_category")
	subCategory := c.Query("sub_category")
	search := c.Query("search")

	// 🔎 La recherche plein texte passe par Elasticsearch
	if search != "" {
		if results, err := services.SearchProducts(search); err == nil {
			c.JSON(http.StatusOK, results)
			return
		}
		// Elastic indisponible : on retombe sur un filtre nom en mémoire
		log.Println("⚠️ Recherche Elastic indisponible, fallback ScyllaDB")
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()
	products := scanProducts(iter)
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if mainCategory != "" && p.MainCategory != mainCategory {
			continue
		}
		if subCategory != "" && p.SubCategory != subCategory {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, filtered)
}

//
// 🔍 GET /api/products/id/:id
//
func GetProductByID(c *gin.Context) {
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

	iter := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`,
		gocql.UUID(productID)).Iter()
	products := scanProducts(iter)
	iter.Close()

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	p := products[0]

	// 🖼️ URL signée MinIO pour l'image, si elle vit dans le bucket
	if p.ImageURL != "" && !strings.HasPrefix(p.ImageURL, "https://") {
		if signed, err := services.GenerateSignedURL(context.Background(), p.ImageURL, 24*time.Hour); err == nil {
			p.ImageURL = signed
		}
	}

	c.JSON(http.StatusOK, p)
}
