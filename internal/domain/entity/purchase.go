package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa la cabecera de una compra de farmacia. Inmutable una vez creada.
type Purchase struct {
	ID           string
	UserID       string
	PurchaseDate time.Time
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	ChangeAmount decimal.Decimal // siempre >= 0
}

// PurchaseItem representa una línea de compra con clave compuesta
// (PurchaseID, ProductID). Los campos Product* son una instantánea
// desnormalizada al momento de la venta: editar un producto después
// no altera los comprobantes históricos.
type PurchaseItem struct {
	PurchaseID         string
	ProductID          string
	ProductName        string
	ProductDescription string
	ProductPrice       decimal.Decimal
	Quantity           int
}

// Subtotal devuelve precio por cantidad de la línea.
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PurchaseWithItems es la vista cabecera + líneas para historial y comprobantes.
type PurchaseWithItems struct {
	Purchase
	Items []PurchaseItem
}
