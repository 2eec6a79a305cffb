package models

import (
	"errors"
	"strings"
)

// Address est l'adresse de livraison saisie au checkout.
// Tous les champs sont obligatoires (validation de non-vacuité uniquement).
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

var ErrIncompleteAddress = errors.New("adresse incomplète : tous les champs sont obligatoires")

func (a Address) Validate() error {
	fields := []string{a.FullName, a.Street, a.City, a.PostalCode, a.Country}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrIncompleteAddress
		}
	}
	return nil
}

// Format fige l'adresse en texte pour la commande, un champ par ligne,
// dans un ordre déterministe.
func (a Address) Format() string {
	return strings.Join([]string{a.FullName, a.Street, a.City, a.PostalCode, a.Country}, "\n")
}
