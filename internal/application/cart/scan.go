package cart

import (
	"strings"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
)

// Prefijos y centinelas reconocidos en los códigos QR de la farmacia.
const (
	productQRPrefix   = "PRODUCT_ID:"
	paymentQRSentinel = "PAYMENT_QR_CLINICA"
)

// ScanAction acción derivada de un código escaneado.
type ScanAction int

const (
	// ScanAddProduct el código identifica un producto a agregar al carrito.
	ScanAddProduct ScanAction = iota
	// ScanPayment el código es el QR de cobro de la clínica.
	ScanPayment
)

// ParseScan interpreta el contenido crudo de un código escaneado.
// "PRODUCT_ID:<id>" agrega el producto <id>; el centinela de pago dispara
// el cobro. Cualquier otro contenido es inválido.
func ParseScan(content string) (ScanAction, string, error) {
	content = strings.TrimSpace(content)
	if content == paymentQRSentinel {
		return ScanPayment, "", nil
	}
	if id, ok := strings.CutPrefix(content, productQRPrefix); ok && id != "" {
		return ScanAddProduct, id, nil
	}
	return 0, "", domain.ErrInvalidInput
}
