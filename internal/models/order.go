package models

import (
	"errors"
	"time"

	"github.com/gocql/gocql"
)

// DeliveryOption correspond aux trois modes proposés par l'app mobile.
type DeliveryOption string

const (
	DeliveryPickup  DeliveryOption = "pickup"
	DeliveryCourier DeliveryOption = "courier"
	DeliveryDrone   DeliveryOption = "drone"
)

var ErrInvalidDeliveryOption = errors.New("mode de livraison invalide")

func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch DeliveryOption(s) {
	case DeliveryPickup, DeliveryCourier, DeliveryDrone:
		return DeliveryOption(s), nil
	}
	return "", ErrInvalidDeliveryOption
}

// Order est immuable une fois créée. Items et DeliveryAddress sont des
// copies figées du panier et de l'adresse au moment du checkout.
type Order struct {
	ID              gocql.UUID     `json:"id"`
	UserID          string         `json:"user_id"`
	PaymentMethod   string         `json:"payment_method"`
	DeliveryAddress string         `json:"delivery_address"`
	DeliveryOption  DeliveryOption `json:"delivery_option"`
	NonContact      bool           `json:"non_contact"`
	TotalAmount     Cents          `json:"total_amount"`
	Items           []CartLine     `json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
}
