package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemResponse línea de compra con la instantánea del producto al momento de la venta.
type PurchaseItemResponse struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description"`
	ProductPrice       decimal.Decimal `json:"product_price"`
	Quantity           int             `json:"quantity"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	PurchaseDate time.Time              `json:"purchase_date"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	PaidAmount   decimal.Decimal        `json:"paid_amount"`
	ChangeAmount decimal.Decimal        `json:"change_amount"`
	Items        []PurchaseItemResponse `json:"items"`
}

// CheckoutResponse resultado de un pago exitoso.
type CheckoutResponse struct {
	Message  string           `json:"message"`
	Purchase PurchaseResponse `json:"purchase"`
}
