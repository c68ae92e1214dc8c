package dto

import "github.com/shopspring/decimal"

// AddToCartRequest agrega un producto al carrito. Quantity <= 0 se trata como 1.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest fija la cantidad de una línea. Cero o negativo la elimina.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SetPaidRequest fija el monto entregado por el cliente.
type SetPaidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ScanRequest contenido crudo de un código escaneado.
type ScanRequest struct {
	Content string `json:"content"`
}

// CartItemResponse línea del carrito con su subtotal.
type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartResponse estado completo del carrito. Warning acompaña a las
// operaciones que recortaron cantidades por falta de stock.
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Total   decimal.Decimal    `json:"total"`
	Paid    decimal.Decimal    `json:"paid"`
	Change  decimal.Decimal    `json:"change"`
	Warning string             `json:"warning,omitempty"`
}
