package user

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/cache"
	"grocerly_back_end/internal/checkout"
	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
	"grocerly_back_end/internal/services"
	"grocerly_back_end/internal/utils"
)

type placeOrderInput struct {
	PaymentMethod  string         `json:"payment_method"`
	Address        models.Address `json:"address"`
	DeliveryOption string         `json:"delivery_option"`
	NonContact     bool           `json:"non_contact"`
}

//
// 🧾 POST /api/orders — checkout
//
func PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input placeOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	profile, err := cache.GetProfileFromCache(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération profil"})
		return
	}

	ctx := context.Background()
	ck := loadCart(ctx, userID)

	// La matérialisation est entièrement validée en mémoire : en cas de
	// refus, rien n'a été écrit nulle part.
	order, err := checkout.PlaceOrder(profile, ck,
		input.PaymentMethod, input.Address,
		models.DeliveryOption(input.DeliveryOption), input.NonContact)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": checkoutErrorMessage(err)})
		return
	}

	// Persiste la commande AVANT de vider le panier Redis : si l'insertion
	// échoue, le panier du client reste intact.
	if err := insertOrder(order); err != nil {
		log.Printf("❌ Erreur insertion commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement commande"})
		return
	}

	// Vidage du panier en dernier, pas de rollback
	database.RedisClient.Del(ctx, cartKey(userID))
	database.RedisClient.Publish(ctx, cartKey(userID), "cleared")

	// 📧 Confirmation par email, en arrière-plan
	if profile.Email != "" {
		go func(email string, o models.Order) {
			pdf, err := services.RenderReceiptPDF(o)
			if err != nil {
				log.Printf("⚠️ Reçu PDF indisponible pour %s: %v", o.ID, err)
			}
			if err := utils.SendOrderConfirmationEmail(email, o, pdf); err != nil {
				log.Printf("⚠️ Erreur email confirmation: %v", err)
			}
		}(profile.Email, order)
	}

	response := gin.H{
		"message": "Commande enregistrée",
		"order":   order,
	}
	if order.DeliveryOption == models.DeliveryPickup {
		if qr, err := services.PickupQRCode(order); err == nil {
			response["pickup_qr"] = qr
		}
	}

	log.Printf("✅ Commande %s enregistrée pour user %s (%s€)", order.ID, userID, order.TotalAmount)
	c.JSON(http.StatusCreated, response)
}

func checkoutErrorMessage(err error) string {
	switch {
	case errors.Is(err, checkout.ErrNoPaymentMethod):
		return "Veuillez sélectionner un moyen de paiement"
	case errors.Is(err, models.ErrIncompleteAddress):
		return "Veuillez remplir tous les champs de l'adresse"
	case errors.Is(err, models.ErrInvalidDeliveryOption):
		return "Veuillez choisir un mode de livraison"
	case errors.Is(err, checkout.ErrEmptyCart):
		return "Votre panier est vide"
	}
	return "Commande refusée"
}

func insertOrder(order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO orders (order_id, user_id, payment_method, delivery_address, delivery_option, non_contact, total_amount, items, created_at)
	                      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, order.PaymentMethod, order.DeliveryAddress,
		string(order.DeliveryOption), order.NonContact, int64(order.TotalAmount),
		string(itemsJSON), order.CreatedAt).Exec()
}

func scanOrders(iter *gocql.Iter) []models.Order {
	var orders []models.Order
	var (
		orderID                                     gocql.UUID
		userID, payment, address, option, itemsJSON string
		nonContact                                  bool
		totalAmount                                 int64
		createdAt                                   time.Time
	)
	for iter.Scan(&orderID, &userID, &payment, &address, &option, &nonContact, &totalAmount, &itemsJSON, &createdAt) {
		var items []models.CartLine
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			log.Printf("⚠️ Items illisibles pour commande %s: %v", orderID, err)
		}
		orders = append(orders, models.Order{
			ID:              orderID,
			UserID:          userID,
			PaymentMethod:   payment,
			DeliveryAddress: address,
			DeliveryOption:  models.DeliveryOption(option),
			NonContact:      nonContact,
			TotalAmount:     models.Cents(totalAmount),
			Items:           items,
			CreatedAt:       createdAt,
		})
	}
	return orders
}

//
// 📋 GET /api/orders/mine
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT order_id, user_id, payment_method, delivery_address, delivery_option, non_contact, total_amount, items, created_at
	                       FROM orders WHERE user_id = ? ALLOW FILTERING`, userID).Iter()
	orders := scanOrders(iter)
	if err := iter.Close(); err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	// Plus récentes d'abord
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	log.Printf("✅ %d commandes trouvées pour user %s", len(orders), userID)
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func findOrder(c *gin.Context) (models.Order, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return models.Order{}, false
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return models.Order{}, false
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return models.Order{}, false
	}

	iter := session.Query(`SELECT order_id, user_id, payment_method, delivery_address, delivery_option, non_contact, total_amount, items, created_at
	                       FROM orders WHERE order_id = ?`, gocql.UUID(orderID)).Iter()
	orders := scanOrders(iter)
	iter.Close()

	// ✅ Sécurité : la commande doit appartenir à l'utilisateur
	if len(orders) == 0 || orders[0].UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return models.Order{}, false
	}

	return orders[0], true
}

//
// 🔍 GET /api/orders/:id
//
func GetOrderByID(c *gin.Context) {
	order, ok := findOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

//
// 🖨️ GET /api/orders/:id/receipt.pdf
//
func GetOrderReceiptPDF(c *gin.Context) {
	order, ok := findOrder(c)
	if !ok {
		return
	}

	pdf, err := services.RenderReceiptPDF(order)
	if err != nil {
		log.Printf("❌ Erreur génération reçu PDF: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du reçu"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=recu_grocerly.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
