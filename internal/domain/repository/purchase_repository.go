package repository

import "github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras y sus líneas.
// Create y CreateItem se usan dentro de la transacción de checkout (TxRunner);
// los listados vienen ordenados por fecha de compra descendente.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error

	GetByID(id string) (*entity.PurchaseWithItems, error)
	ListForUser(userID string) ([]*entity.PurchaseWithItems, error)
	ListAll() ([]*entity.PurchaseWithItems, error)
}
