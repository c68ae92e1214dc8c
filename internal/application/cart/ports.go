package cart

import (
	"context"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del almacén: los
// repositorios que recibe fn están atados a esa transacción. Si fn
// devuelve error se revierte todo; si no, se confirma y recién entonces
// se avisa a las consultas vivas.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, purchases repository.PurchaseRepository) error) error
}
