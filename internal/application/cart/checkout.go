package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
)

// CheckoutUseCase confirma la venta del carrito contra el almacén.
type CheckoutUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewCheckoutUseCase construye el caso de uso de cobro.
func NewCheckoutUseCase(txRunner TxRunner) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, now: time.Now}
}

// Checkout cobra el carrito: valida que no esté vacío y que el monto
// alcance, y dentro de una sola transacción revalida el stock fila por
// fila bajo bloqueo, inserta la compra con sus líneas y descuenta stock.
// Si cualquier producto falta o no alcanza, no se persiste nada y el
// carrito queda intacto. Con éxito, el carrito se vacía.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, c *Cart) (*entity.PurchaseWithItems, error) {
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	items := c.Items()
	total := c.Total()
	paid := c.Paid()
	if paid.LessThan(total) {
		return nil, domain.ErrInsufficientPayment
	}

	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		UserID:       userID,
		PurchaseDate: uc.now(),
		TotalAmount:  total,
		PaidAmount:   paid,
		ChangeAmount: paid.Sub(total),
	}
	result := &entity.PurchaseWithItems{Purchase: *purchase}

	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, purchases repository.PurchaseRepository) error {
		if err := purchases.Create(purchase); err != nil {
			return err
		}
		for _, it := range items {
			locked, err := products.GetForUpdate(it.Product.ID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if locked.Stock < it.Quantity {
				return domain.ErrInsufficientStock
			}
			line := &entity.PurchaseItem{
				PurchaseID:         purchase.ID,
				ProductID:          it.Product.ID,
				ProductName:        it.Product.Name,
				ProductDescription: it.Product.Description,
				ProductPrice:       it.Product.Price,
				Quantity:           it.Quantity,
			}
			if err := purchases.CreateItem(line); err != nil {
				return err
			}
			if err := products.UpdateStock(locked.ID, locked.Stock-it.Quantity); err != nil {
				return err
			}
			result.Items = append(result.Items, *line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return result, nil
}
