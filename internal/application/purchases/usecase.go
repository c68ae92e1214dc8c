// Package purchases expone el historial de compras y la emisión de
// boletas en PDF.
package purchases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

// ReceiptData datos de la boleta de una compra.
type ReceiptData struct {
	PurchaseID string
	UserName   string
	Date       time.Time
	Items      []entity.PurchaseItem
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Change     decimal.Decimal
}

// ReceiptGenerator genera la boleta en PDF de una compra.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}

// UseCase casos de uso del historial de compras.
type UseCase struct {
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	receipts     ReceiptGenerator
	bus          *livequery.Bus
}

// NewUseCase construye el caso de uso del historial.
func NewUseCase(
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	receipts ReceiptGenerator,
	bus *livequery.Bus,
) *UseCase {
	return &UseCase{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		receipts:     receipts,
		bus:          bus,
	}
}

// ListForUser compras del usuario, más recientes primero.
func (uc *UseCase) ListForUser(userID string) ([]*entity.PurchaseWithItems, error) {
	return uc.purchaseRepo.ListForUser(userID)
}

// ListAll todas las compras, más recientes primero.
func (uc *UseCase) ListAll() ([]*entity.PurchaseWithItems, error) {
	return uc.purchaseRepo.ListAll()
}

// Get devuelve una compra visible para el solicitante: el dueño o un
// admin. ErrNotFound si no existe; ErrForbidden si pertenece a otro.
func (uc *UseCase) Get(id, requesterID, requesterRole string) (*entity.PurchaseWithItems, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return purchase, nil
}

// Receipt genera la boleta en PDF de una compra, con el mismo control de
// acceso que Get.
func (uc *UseCase) Receipt(ctx context.Context, id, requesterID, requesterRole string) ([]byte, error) {
	purchase, err := uc.Get(id, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}
	userName := ""
	if user, err := uc.userRepo.GetByID(purchase.UserID); err == nil && user != nil {
		userName = user.Name
	}
	items := make([]entity.PurchaseItem, len(purchase.Items))
	copy(items, purchase.Items)
	return uc.receipts.GenerateReceiptPDF(ctx, ReceiptData{
		PurchaseID: purchase.ID,
		UserName:   userName,
		Date:       purchase.PurchaseDate,
		Items:      items,
		Total:      purchase.TotalAmount,
		Paid:       purchase.PaidAmount,
		Change:     purchase.ChangeAmount,
	})
}

// WatchUser suscripción viva al historial del usuario.
func (uc *UseCase) WatchUser(userID string) (*livequery.Subscription[[]*entity.PurchaseWithItems], error) {
	return livequery.Watch(uc.bus, []string{"purchases", "purchase_items"}, func() ([]*entity.PurchaseWithItems, error) {
		return uc.purchaseRepo.ListForUser(userID)
	})
}

// WatchAll suscripción viva a todas las compras.
func (uc *UseCase) WatchAll() (*livequery.Subscription[[]*entity.PurchaseWithItems], error) {
	return livequery.Watch(uc.bus, []string{"purchases", "purchase_items"}, uc.purchaseRepo.ListAll)
}
