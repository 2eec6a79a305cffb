// Package cart implémente le panier en mémoire. Les handlers chargent le
// panier depuis Redis, appliquent une mutation ici puis le réécrivent :
// toute la logique (fusion, quantités, totaux) vit dans ce package.
package cart

import "grocerly_back_end/internal/models"

// Frais de livraison fixes, appliqués dès que le sous-total est positif.
const DeliveryFee models.Cents = 250

type Cart struct {
	Lines []models.CartLine
}

func New(lines []models.CartLine) *Cart {
	return &Cart{Lines: lines}
}

// Add fusionne la ligne avec une ligne existante du même produit
// (les quantités s'additionnent), sinon l'ajoute en fin de panier.
// Une quantité < 1 est ignorée pour préserver l'invariant Quantity >= 1.
func (c *Cart) Add(line models.CartLine) {
	if line.Quantity < 1 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Remove supprime la ligne entière, quelle que soit sa quantité.
// Produit absent = no-op, pas une erreur.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Increase ajoute 1 à la quantité. No-op si le produit est absent.
func (c *Cart) Increase(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}
}

// Decrease retire 1 à la quantité et supprime la ligne si elle tombe
// à zéro. No-op si le produit est absent.
func (c *Cart) Decrease(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity--
			if c.Lines[i].Quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Count retourne le nombre total d'articles (somme des quantités).
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() models.Cents {
	var total models.Cents
	for _, l := range c.Lines {
		total += l.UnitPrice * models.Cents(l.Quantity)
	}
	return total
}

func (c *Cart) DeliveryFeeAmount() models.Cents {
	if c.Subtotal() > 0 {
		return DeliveryFee
	}
	return 0
}

func (c *Cart) Total() models.Cents {
	return c.Subtotal() + c.DeliveryFeeAmount()
}

// Snapshot retourne une copie profonde des lignes : les mutations
// ultérieures du panier ne doivent jamais toucher une commande déjà créée.
func (c *Cart) Snapshot() []models.CartLine {
	out := make([]models.CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}
