// Package pharmacy gestiona el catálogo de productos de la farmacia:
// altas y ediciones de admin, listado y búsqueda para el cliente, y
// suscripciones vivas sobre el catálogo.
package pharmacy

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

// UseCase casos de uso del catálogo de farmacia.
type UseCase struct {
	productRepo repository.ProductRepository
	bus         *livequery.Bus
	collator    *collate.Collator
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(productRepo repository.ProductRepository, bus *livequery.Bus) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		bus:         bus,
		collator:    collate.New(language.Spanish),
	}
}

func (uc *UseCase) sortByName(products []*entity.PharmacyProduct) {
	sort.SliceStable(products, func(i, j int) bool {
		return uc.collator.CompareString(products[i].Name, products[j].Name) < 0
	})
}

func validateProduct(in dto.SaveProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta un producto. Nombre obligatorio; precio y stock no
// pueden ser negativos.
func (uc *UseCase) Create(in dto.SaveProductRequest) (*entity.PharmacyProduct, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := &entity.PharmacyProduct{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edita un producto existente. ErrNotFound si no existe.
func (uc *UseCase) Update(id string, in dto.SaveProductRequest) (*entity.PharmacyProduct, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.ImageURL = in.ImageURL
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto. ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// GetByID devuelve un producto. ErrNotFound si no existe.
func (uc *UseCase) GetByID(id string) (*entity.PharmacyProduct, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List catálogo completo ordenado por nombre con colación española.
func (uc *UseCase) List() ([]*entity.PharmacyProduct, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	uc.sortByName(products)
	return products, nil
}

// Search busca por nombre (subcadena, sin distinguir mayúsculas). Con la
// consulta vacía devuelve el catálogo completo.
func (uc *UseCase) Search(query string) ([]*entity.PharmacyProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.List()
	}
	products, err := uc.productRepo.Search(query)
	if err != nil {
		return nil, err
	}
	uc.sortByName(products)
	return products, nil
}

// Watch suscripción viva al catálogo completo.
func (uc *UseCase) Watch() (*livequery.Subscription[[]*entity.PharmacyProduct], error) {
	return livequery.Watch(uc.bus, []string{"pharmacy_products"}, uc.List)
}
