package pharmacy

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

type fakeProductRepo struct {
	products map[string]*entity.PharmacyProduct
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.PharmacyProduct)}
}

func (r *fakeProductRepo) Create(p *entity.PharmacyProduct) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(p *entity.PharmacyProduct) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.PharmacyProduct, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.PharmacyProduct, error) {
	var out []*entity.PharmacyProduct
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Search(query string) ([]*entity.PharmacyProduct, error) {
	var out []*entity.PharmacyProduct
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.PharmacyProduct, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func TestCreateAndList(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), livequery.NewBus())

	_, err := uc.Create(dto.SaveProductRequest{Name: "Paracetamol 500mg", Price: decimal.RequireFromString("5.50"), Stock: 100})
	require.NoError(t, err)
	_, err = uc.Create(dto.SaveProductRequest{Name: "Ibuprofeno 400mg", Price: decimal.RequireFromString("8.75"), Stock: 75})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ibuprofeno 400mg", list[0].Name)
	assert.Equal(t, "Paracetamol 500mg", list[1].Name)
}

func TestCreateValidation(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), livequery.NewBus())

	_, err := uc.Create(dto.SaveProductRequest{Name: "   ", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.SaveProductRequest{Name: "Amoxicilina", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.SaveProductRequest{Name: "Amoxicilina", Price: decimal.NewFromInt(1), Stock: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), livequery.NewBus())

	_, err := uc.Create(dto.SaveProductRequest{Name: "Paracetamol 500mg", Price: decimal.RequireFromString("5.50"), Stock: 100})
	require.NoError(t, err)
	_, err = uc.Create(dto.SaveProductRequest{Name: "Ibuprofeno 400mg", Price: decimal.RequireFromString("8.75"), Stock: 75})
	require.NoError(t, err)

	found, err := uc.Search("paraceta")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Paracetamol 500mg", found[0].Name)

	// Consulta vacía devuelve el catálogo completo.
	all, err := uc.Search("  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateNotFound(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), livequery.NewBus())

	_, err := uc.Update("no-existe", dto.SaveProductRequest{Name: "X", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWatchCatalog(t *testing.T) {
	bus := livequery.NewBus()
	uc := NewUseCase(newFakeProductRepo(), bus)

	sub, err := uc.Watch()
	require.NoError(t, err)
	defer sub.Cancel()

	initial := <-sub.Updates()
	assert.Empty(t, initial)

	_, err = uc.Create(dto.SaveProductRequest{Name: "Paracetamol 500mg", Price: decimal.RequireFromString("5.50"), Stock: 100})
	require.NoError(t, err)
	bus.Notify("pharmacy_products")

	snapshot := <-sub.Updates()
	require.Len(t, snapshot, 1)
}
