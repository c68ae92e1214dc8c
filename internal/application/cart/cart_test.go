package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

func paracetamol() *entity.PharmacyProduct {
	return &entity.PharmacyProduct{
		ID:          "prod-1",
		Name:        "Paracetamol 500mg",
		Description: "Analgésico y antipirético",
		Price:       decimal.RequireFromString("5.50"),
		Stock:       100,
	}
}

func ibuprofeno() *entity.PharmacyProduct {
	return &entity.PharmacyProduct{
		ID:          "prod-2",
		Name:        "Ibuprofeno 400mg",
		Description: "Antiinflamatorio no esteroideo",
		Price:       decimal.RequireFromString("8.75"),
		Stock:       3,
	}
}

func TestCartAdd(t *testing.T) {
	c := New()

	warning := c.Add(paracetamol(), 2)
	assert.Empty(t, warning)

	warning = c.Add(paracetamol(), 3)
	assert.Empty(t, warning)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("27.50")))
}

func TestCartAddClampsToStock(t *testing.T) {
	c := New()

	warning := c.Add(ibuprofeno(), 10)
	assert.Equal(t, "No hay suficiente stock para Ibuprofeno 400mg. Solo quedan 3 unidades.", warning)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartAddDefaultsToOne(t *testing.T) {
	c := New()

	c.Add(paracetamol(), 0)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartSetQuantity(t *testing.T) {
	c := New()
	c.Add(paracetamol(), 1)

	warning := c.SetQuantity(paracetamol(), 4)
	assert.Empty(t, warning)
	assert.Equal(t, 4, c.Items()[0].Quantity)

	warning = c.SetQuantity(ibuprofeno(), 5)
	assert.NotEmpty(t, warning)
	require.Len(t, c.Items(), 2)

	c.SetQuantity(paracetamol(), 0)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-2", items[0].Product.ID)
}

func TestCartRemove(t *testing.T) {
	c := New()
	c.Add(paracetamol(), 2)
	c.Add(ibuprofeno(), 1)

	c.Remove("prod-1")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-2", items[0].Product.ID)

	c.Remove("no-existe")
	assert.Len(t, c.Items(), 1)
}

func TestCartChange(t *testing.T) {
	c := New()
	c.Add(paracetamol(), 2) // 11.00

	c.SetPaid(decimal.RequireFromString("20.00"))
	assert.True(t, c.Change().Equal(decimal.RequireFromString("9.00")))

	c.SetPaid(decimal.RequireFromString("5.00"))
	assert.True(t, c.Change().IsZero())
}

func TestCartClear(t *testing.T) {
	c := New()
	c.Add(paracetamol(), 2)
	c.SetPaid(decimal.RequireFromString("20.00"))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Paid().IsZero())
}
