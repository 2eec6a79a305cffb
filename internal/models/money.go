package models

import (
	"errors"
	"fmt"
	"strings"
)

// Cents représente un montant en centimes d'euro (entier, jamais de flottant)
type Cents int64

var ErrInvalidPrice = errors.New("prix invalide")

// ParsePrice convertit un prix décimal ("2.50") en centimes.
// Un prix illisible est rejeté, jamais converti silencieusement en 0.
func ParsePrice(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidPrice
	}
	if len(fracPart) > 2 {
		return 0, ErrInvalidPrice
	}

	var euros int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidPrice
		}
		euros = euros*10 + int64(r-'0')
	}

	var cents int64
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidPrice
		}
		cents = cents*10 + int64(r-'0')
	}
	if len(fracPart) == 1 {
		cents *= 10
	}

	return Cents(euros*100 + cents), nil
}

// String restitue le montant au format décimal ("2.50")
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
