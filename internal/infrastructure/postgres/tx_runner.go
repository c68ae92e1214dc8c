package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

var _ cart.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los
// repositorios que recibe fn están atados a la tx y no avisan al bus; el
// aviso único se da aquí después del commit, para que las consultas vivas
// lean siempre un estado confirmado.
type TxRunner struct {
	pool *pgxpool.Pool
	bus  *livequery.Bus
}

// NewTxRunner construye el runner con el pool y el bus de consultas vivas.
func NewTxRunner(pool *pgxpool.Pool, bus *livequery.Bus) *TxRunner {
	return &TxRunner{pool: pool, bus: bus}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	purchases repository.PurchaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx, nil)
	purchaseRepo := NewPurchaseRepository(tx)

	if err := fn(productRepo, purchaseRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	r.bus.Notify("purchases", "purchase_items", "pharmacy_products")
	return nil
}
