package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentmethod"
	"github.com/stripe/stripe-go/v83/setupintent"
)

//
// 💳 POST /api/payment/card — capture de carte
//
// L'app envoie l'identifiant du payment method créé côté Stripe SDK ;
// on enregistre la carte pour un usage futur et on renvoie le libellé
// ("Visa •••• 4242") que l'écran checkout passera tel quel à la commande.
// Le débit effectif n'est pas traité ici.
func CaptureCard(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		PaymentMethodID string `json:"payment_method_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	pm, err := paymentmethod.Get(input.PaymentMethodID, nil)
	if err != nil {
		log.Printf("❌ Erreur Stripe payment method: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carte introuvable"})
		return
	}
	if pm.Card == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moyen de paiement non supporté"})
		return
	}

	si, err := setupintent.New(&stripe.SetupIntentParams{
		PaymentMethod: stripe.String(pm.ID),
		Usage:         stripe.String(string(stripe.SetupIntentUsageOffSession)),
		Metadata:      map[string]string{"user_id": userID},
	})
	if err != nil {
		log.Printf("❌ Erreur Stripe setup intent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement carte"})
		return
	}

	label := fmt.Sprintf("%s •••• %s", cardBrandLabel(pm.Card.Brand), pm.Card.Last4)

	c.JSON(http.StatusOK, gin.H{
		"label":         label,
		"client_secret": si.ClientSecret,
	})
}

func cardBrandLabel(brand stripe.PaymentMethodCardBrand) string {
	switch brand {
	case stripe.PaymentMethodCardBrandVisa:
		return "Visa"
	case stripe.PaymentMethodCardBrandMastercard:
		return "Mastercard"
	case stripe.PaymentMethodCardBrandAmex:
		return "American Express"
	}
	// ex: "unionpay" → "Unionpay"
	s := string(brand)
	if s == "" {
		return "Carte"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
