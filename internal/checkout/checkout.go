// Package checkout matérialise la commande : il fige le panier et les
// choix du checkout en un Order immuable ajouté à l'historique du profil,
// puis vide le panier. Aucune étape ne peut échouer après la validation,
// donc pas de rollback : le vidage du panier vient toujours en dernier.
package checkout

import (
	"errors"
	"time"

	"github.com/gocql/gocql"

	"grocerly_back_end/internal/cart"
	"grocerly_back_end/internal/models"
)

var (
	ErrNoPaymentMethod = errors.New("aucun moyen de paiement sélectionné")
	ErrEmptyCart       = errors.New("le panier est vide")
)

// PlaceOrder vérifie les préconditions, crée la commande et l'ajoute à
// l'historique du profil, puis vide le panier. En cas d'erreur de
// validation, ni le profil ni le panier ne sont modifiés.
func PlaceOrder(p *models.Profile, c *cart.Cart, paymentMethod string, addr models.Address, option models.DeliveryOption, nonContact bool) (models.Order, error) {
	if paymentMethod == "" {
		return models.Order{}, ErrNoPaymentMethod
	}
	if err := addr.Validate(); err != nil {
		return models.Order{}, err
	}
	if _, err := models.ParseDeliveryOption(string(option)); err != nil {
		return models.Order{}, err
	}
	if c.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:              gocql.TimeUUID(),
		UserID:          p.UserID,
		PaymentMethod:   paymentMethod,
		DeliveryAddress: addr.Format(),
		DeliveryOption:  option,
		NonContact:      nonContact,
		TotalAmount:     c.Total(),
		Items:           c.Snapshot(),
		CreatedAt:       time.Now().UTC(),
	}

	p.AddOrder(order)
	c.Clear()

	return order, nil
}
