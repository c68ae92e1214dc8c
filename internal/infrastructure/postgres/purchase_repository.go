package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre
// PostgreSQL (usable con pool o tx). Las escrituras suceden siempre
// dentro de la transacción de cobro; el aviso a las consultas vivas lo da
// el TxRunner después del commit.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de una compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, purchase_date, total_amount, paid_amount, change_amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.PurchaseDate,
		purchase.TotalAmount, purchase.PaidAmount, purchase.ChangeAmount,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de compra con su instantánea de producto.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (purchase_id, product_id, product_name, product_description, product_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.PurchaseID, item.ProductID, item.ProductName,
		item.ProductDescription, item.ProductPrice, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

const purchaseColumns = `id, user_id, purchase_date, total_amount, paid_amount, change_amount`

// GetByID obtiene una compra con sus líneas. (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.PurchaseWithItems, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.PurchaseDate, &p.TotalAmount, &p.PaidAmount, &p.ChangeAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.itemsFor([]string{p.ID})
	if err != nil {
		return nil, err
	}
	return &entity.PurchaseWithItems{Purchase: p, Items: items[p.ID]}, nil
}

// ListForUser compras del usuario con sus líneas, más recientes primero.
func (r *PurchaseRepo) ListForUser(userID string) ([]*entity.PurchaseWithItems, error) {
	return r.list(`SELECT `+purchaseColumns+` FROM purchases WHERE user_id = $1 ORDER BY purchase_date DESC`, userID)
}

// ListAll todas las compras con sus líneas, más recientes primero.
func (r *PurchaseRepo) ListAll() ([]*entity.PurchaseWithItems, error) {
	return r.list(`SELECT ` + purchaseColumns + ` FROM purchases ORDER BY purchase_date DESC`)
}

func (r *PurchaseRepo) list(query string, args ...any) ([]*entity.PurchaseWithItems, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseWithItems
	var ids []string
	for rows.Next() {
		var p entity.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.PurchaseDate, &p.TotalAmount, &p.PaidAmount, &p.ChangeAmount)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, &entity.PurchaseWithItems{Purchase: p})
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, p := range out {
		p.Items = items[p.ID]
	}
	return out, nil
}

// itemsFor carga las líneas de un conjunto de compras en una sola consulta.
func (r *PurchaseRepo) itemsFor(purchaseIDs []string) (map[string][]entity.PurchaseItem, error) {
	query := `
		SELECT purchase_id, product_id, product_name, product_description, product_price, quantity
		FROM purchase_items WHERE purchase_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, purchaseIDs)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entity.PurchaseItem, len(purchaseIDs))
	for rows.Next() {
		var it entity.PurchaseItem
		err := rows.Scan(&it.PurchaseID, &it.ProductID, &it.ProductName, &it.ProductDescription, &it.ProductPrice, &it.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items[it.PurchaseID] = append(items[it.PurchaseID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase items: %w", err)
	}
	return items, nil
}
