// Package cart implementa el carrito de compras en memoria y el flujo de
// pago: cada usuario autenticado tiene su carrito, las cantidades se
// recortan al stock disponible y el cobro se confirma en una sola
// transacción contra el almacén.
package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

// Item línea del carrito: el producto tal como se agregó y su cantidad.
type Item struct {
	Product  entity.PharmacyProduct
	Quantity int
}

// Subtotal precio por cantidad de la línea.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart carrito de un usuario. Seguro para uso concurrente.
type Cart struct {
	mu    sync.Mutex
	items []Item
	paid  decimal.Decimal
}

// New construye un carrito vacío.
func New() *Cart {
	return &Cart{paid: decimal.Zero}
}

func stockWarning(p *entity.PharmacyProduct) string {
	return fmt.Sprintf("No hay suficiente stock para %s. Solo quedan %d unidades.", p.Name, p.Stock)
}

// Add agrega quantity unidades del producto, acumulando sobre la línea si
// ya existe. Si la cantidad resultante supera el stock, se recorta al
// stock y se devuelve una advertencia; con quantity <= 0 se agrega una.
func (c *Cart) Add(product *entity.PharmacyProduct, quantity int) (warning string) {
	if quantity <= 0 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx := range c.items {
		if c.items[idx].Product.ID == product.ID {
			want := c.items[idx].Quantity + quantity
			if want > product.Stock {
				want = product.Stock
				warning = stockWarning(product)
			}
			if want <= 0 {
				c.removeLocked(product.ID)
				return warning
			}
			c.items[idx].Product = *product
			c.items[idx].Quantity = want
			return warning
		}
	}

	if quantity > product.Stock {
		quantity = product.Stock
		warning = stockWarning(product)
	}
	if quantity > 0 {
		c.items = append(c.items, Item{Product: *product, Quantity: quantity})
	}
	return warning
}

// SetQuantity fija la cantidad de la línea del producto. Cero o negativo
// elimina la línea; por encima del stock se recorta con advertencia.
func (c *Cart) SetQuantity(product *entity.PharmacyProduct, quantity int) (warning string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(product.ID)
		return ""
	}
	if quantity > product.Stock {
		quantity = product.Stock
		warning = stockWarning(product)
	}
	for idx := range c.items {
		if c.items[idx].Product.ID == product.ID {
			c.items[idx].Product = *product
			c.items[idx].Quantity = quantity
			return warning
		}
	}
	if quantity > 0 {
		c.items = append(c.items, Item{Product: *product, Quantity: quantity})
	}
	return warning
}

// Remove elimina la línea del producto, si existe.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for idx := range c.items {
		if c.items[idx].Product.ID == productID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

// SetPaid fija el monto entregado por el cliente.
func (c *Cart) SetPaid(amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paid = amount
}

// Items copia de las líneas del carrito.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total suma de los subtotales.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Paid monto entregado por el cliente.
func (c *Cart) Paid() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paid
}

// Change vuelto: pagado menos total, nunca negativo.
func (c *Cart) Change() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	change := c.paid.Sub(c.totalLocked())
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Clear vacía el carrito y reinicia el monto pagado.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.paid = decimal.Zero
}
