package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cart"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour // 30 jours

func cartKey(userID string) string { return "cart:" + userID }

// loadCart charge le panier Redis de l'utilisateur dans l'agrégat en mémoire.
// Panier absent = panier vide.
func loadCart(ctx context.Context, userID string) *cart.Cart {
	data, err := database.RedisClient.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return cart.New(nil)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return cart.New(nil)
	}
	return cart.New(lines)
}

// saveCart réécrit le panier dans Redis et notifie les WebSockets abonnés
func saveCart(ctx context.Context, userID string, c *cart.Cart) error {
	jsonData, err := json.Marshal(c.Lines)
	if err != nil {
		return err
	}
	if err := database.RedisClient.Set(ctx, cartKey(userID), jsonData, cartTTL).Err(); err != nil {
		return err
	}
	database.RedisClient.Publish(ctx, cartKey(userID), "updated")
	return nil
}

func cartResponse(c *cart.Cart) gin.H {
	items := c.Lines
	if items == nil {
		items = []models.CartLine{}
	}
	return gin.H{
		"items":        items,
		"count":        c.Count(),
		"subtotal":     c.Subtotal(),
		"delivery_fee": c.DeliveryFeeAmount(),
		"total":        c.Total(),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ck := loadCart(context.Background(), userID)
	c.JSON(http.StatusOK, cartResponse(ck))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	// 🧩 Récupération du produit depuis ScyllaDB
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var name, imageURL string
	var price int64
	err = session.Query(`SELECT name, price, image_url FROM products WHERE product_id = ?`,
		gocql.UUID(productID)).Scan(&name, &price, &imageURL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx := context.Background()
	ck := loadCart(ctx, userID)
	ck.Add(models.CartLine{
		ProductID: input.ProductID,
		Name:      name,
		UnitPrice: models.Cents(price),
		ImageURL:  imageURL,
		Quantity:  input.Quantity,
	})

	if err := saveCart(ctx, userID, ck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   ck.Lines,
	})
}

//
// 🔼 POST /api/cart/increase/:productId
//
func IncreaseQuantity(c *gin.Context) {
	adjustQuantity(c, func(ck *cart.Cart, productID string) { ck.Increase(productID) })
}

//
// 🔽 POST /api/cart/decrease/:productId
//
func DecreaseQuantity(c *gin.Context) {
	adjustQuantity(c, func(ck *cart.Cart, productID string) { ck.Decrease(productID) })
}

func adjustQuantity(c *gin.Context, apply func(*cart.Cart, string)) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ctx := context.Background()
	ck := loadCart(ctx, userID)

	// produit absent = no-op, pas une erreur
	apply(ck, c.Param("productId"))

	if err := saveCart(ctx, userID, ck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(ck))
}

//
// ❌ DELETE /api/cart/item/:productId
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ctx := context.Background()
	ck := loadCart(ctx, userID)
	ck.Remove(c.Param("productId"))

	if err := saveCart(ctx, userID, ck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   ck.Lines,
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ctx := context.Background()
	if err := database.RedisClient.Del(ctx, cartKey(userID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}
	database.RedisClient.Publish(ctx, cartKey(userID), "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
