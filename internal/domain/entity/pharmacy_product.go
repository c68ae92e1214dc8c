package entity

import "github.com/shopspring/decimal"

// PharmacyProduct representa un producto de la farmacia de la clínica.
// Stock solo disminuye a través de compras confirmadas y nunca es negativo.
type PharmacyProduct struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string // opcional
}
