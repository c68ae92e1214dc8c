package repository

import "github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"

// ProductRepository puerto de persistencia para productos de farmacia.
// Listados y búsquedas ordenados por nombre ascendente.
type ProductRepository interface {
	Create(product *entity.PharmacyProduct) error
	Update(product *entity.PharmacyProduct) error
	Delete(id string) error
	GetByID(id string) (*entity.PharmacyProduct, error)
	List() ([]*entity.PharmacyProduct, error)
	Search(query string) ([]*entity.PharmacyProduct, error)

	// GetForUpdate bloquea la fila del producto dentro de la transacción
	// actual (SELECT FOR UPDATE). Solo tiene sentido vía TxRunner.
	GetForUpdate(id string) (*entity.PharmacyProduct, error)
	// UpdateStock fija el stock absoluto del producto.
	UpdateStock(id string, stock int) error
}
