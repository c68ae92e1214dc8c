package dto

import "github.com/shopspring/decimal"

// SaveProductRequest alta o edición de un producto de farmacia (solo admin).
type SaveProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

// ProductResponse representación de un producto de farmacia.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
}
