package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Atado al pool avisa al bus tras cada escritura;
// atado a una transacción recibe bus nil y el aviso lo da el TxRunner
// después del commit.
type ProductRepo struct {
	q   Querier
	bus *livequery.Bus
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier, bus *livequery.Bus) *ProductRepo {
	return &ProductRepo{q: q, bus: bus}
}

const productColumns = `id, name, description, price, stock, image_url`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.PharmacyProduct) error {
	query := `
		INSERT INTO pharmacy_products (id, name, description, price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock, product.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	r.bus.Notify("pharmacy_products")
	return nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.PharmacyProduct) error {
	query := `
		UPDATE pharmacy_products
		SET name = $2, description = $3, price = $4, stock = $5, image_url = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock, product.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	r.bus.Notify("pharmacy_products")
	return nil
}

// Delete elimina un producto. Las líneas de compras que lo referencian caen
// en cascada por la FK de purchase_items.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pharmacy_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	r.bus.Notify("pharmacy_products")
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.PharmacyProduct, error) {
	return r.get(`SELECT `+productColumns+` FROM pharmacy_products WHERE id = $1`, id)
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.PharmacyProduct, error) {
	return r.get(`SELECT `+productColumns+` FROM pharmacy_products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(query, id string) (*entity.PharmacyProduct, error) {
	var p entity.PharmacyProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateStock fija el stock absoluto del producto.
func (r *ProductRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pharmacy_products SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	r.bus.Notify("pharmacy_products")
	return nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *ProductRepo) List() ([]*entity.PharmacyProduct, error) {
	return r.list(`SELECT ` + productColumns + ` FROM pharmacy_products ORDER BY name ASC`)
}

// Search busca por subcadena del nombre, sin distinguir mayúsculas.
func (r *ProductRepo) Search(query string) ([]*entity.PharmacyProduct, error) {
	return r.list(
		`SELECT `+productColumns+` FROM pharmacy_products WHERE name ILIKE '%' || $1 || '%' ORDER BY name ASC`,
		query,
	)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.PharmacyProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.PharmacyProduct
	for rows.Next() {
		var p entity.PharmacyProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}
