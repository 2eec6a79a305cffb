package models

// CartLine est une ligne du panier. L'invariant est garanti par le
// package cart : un seul CartLine par ProductID, Quantity >= 1.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Cents  `json:"unit_price"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}
