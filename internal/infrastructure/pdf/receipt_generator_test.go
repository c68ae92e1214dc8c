package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/purchases"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

func sampleReceipt() purchases.ReceiptData {
	return purchases.ReceiptData{
		PurchaseID: "4f2a9c31-0000-0000-0000-000000000000",
		UserName:   "Ana Torres",
		Date:       time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		Items: []entity.PurchaseItem{
			{
				PurchaseID:   "4f2a9c31-0000-0000-0000-000000000000",
				ProductID:    "prod-1",
				ProductName:  "Paracetamol 500mg",
				ProductPrice: decimal.RequireFromString("5.50"),
				Quantity:     2,
			},
			{
				PurchaseID:   "4f2a9c31-0000-0000-0000-000000000000",
				ProductID:    "prod-2",
				ProductName:  "Ibuprofeno 400mg",
				ProductPrice: decimal.RequireFromString("8.75"),
				Quantity:     1,
			},
		},
		Total:  decimal.RequireFromString("19.75"),
		Paid:   decimal.RequireFromString("25.00"),
		Change: decimal.RequireFromString("5.25"),
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	g := NewMarotoReceiptGenerator("Clínica San Martín")

	bytes, err := g.GenerateReceiptPDF(context.Background(), sampleReceipt())
	require.NoError(t, err)
	require.NotEmpty(t, bytes)
	assert.Equal(t, "%PDF", string(bytes[:4]))
}

func TestGenerateReceiptPDF_SinItems(t *testing.T) {
	g := NewMarotoReceiptGenerator("Clínica San Martín")
	data := sampleReceipt()
	data.Items = nil
	data.UserName = ""

	bytes, err := g.GenerateReceiptPDF(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
}
