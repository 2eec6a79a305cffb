package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID           gocql.UUID `json:"id"`
	Name         string     `json:"name"`
	Price        Cents      `json:"price"`
	ImageURL     string     `json:"image_url"`
	MainCategory string     `json:"main_category"` // ex: "Fruits & Légumes"
	SubCategory  string     `json:"sub_category"`  // ex: "Choux et salades"
	Description  string     `json:"description,omitempty"`
	Weight       string     `json:"weight,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
