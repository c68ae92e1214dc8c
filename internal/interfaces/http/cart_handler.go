package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/pharmacy"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
)

// CartHandler maneja el carrito del usuario autenticado y el flujo de pago,
// incluido el escaneo de códigos QR de producto y de cobro.
type CartHandler struct {
	carts    *cart.Manager
	products *pharmacy.UseCase
	checkout *cart.CheckoutUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(carts *cart.Manager, products *pharmacy.UseCase, checkout *cart.CheckoutUseCase) *CartHandler {
	return &CartHandler{carts: carts, products: products, checkout: checkout}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toCartResponse(h.carts.Get(GetUserID(c)), ""))
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.addProduct(c, in.ProductID, in.Quantity)
}

func (h *CartHandler) addProduct(c *fiber.Ctx, productID string, quantity int) error {
	product, err := h.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	userCart := h.carts.Get(GetUserID(c))
	warning := userCart.Add(product, quantity)
	return c.JSON(toCartResponse(userCart, warning))
}

// UpdateItem godoc
// @Summary      Fijar cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path  string                    true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest true  "quantity"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.products.GetByID(c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	userCart := h.carts.Get(GetUserID(c))
	warning := userCart.SetQuantity(product, in.Quantity)
	return c.JSON(toCartResponse(userCart, warning))
}

// RemoveItem godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userCart := h.carts.Get(GetUserID(c))
	userCart.Remove(c.Params("productId"))
	return c.JSON(toCartResponse(userCart, ""))
}

// SetPaid godoc
// @Summary      Fijar monto pagado
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPaidRequest  true  "amount"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/paid [post]
func (h *CartHandler) SetPaid(c *fiber.Ctx) error {
	var in dto.SetPaidRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount no puede ser negativo"})
	}
	userCart := h.carts.Get(GetUserID(c))
	userCart.SetPaid(in.Amount)
	return c.JSON(toCartResponse(userCart, ""))
}

// Scan godoc
// @Summary      Procesar código QR escaneado
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "content crudo del código"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/scan [post]
func (h *CartHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	action, productID, err := cart.ParseScan(in.Content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QR", Message: "código no reconocido"})
	}
	switch action {
	case cart.ScanAddProduct:
		return h.addProduct(c, productID, 1)
	case cart.ScanPayment:
		return h.Checkout(c)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QR", Message: "código no reconocido"})
}

// Checkout godoc
// @Summary      Pagar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	userCart := h.carts.Get(GetUserID(c))
	result, err := h.checkout.Checkout(c.Context(), GetUserID(c), userCart)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "EMPTY_CART",
				Message: "El carrito está vacío. Agregue productos antes de pagar.",
			})
		case errors.Is(err, domain.ErrInsufficientPayment):
			missing := userCart.Total().Sub(userCart.Paid())
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_PAYMENT",
				Message: fmt.Sprintf("Monto insuficiente. Faltan S/. %.2f", missing.InexactFloat64()),
			})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para completar la compra"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_GONE", Message: "un producto del carrito ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CheckoutResponse{
		Message:  fmt.Sprintf("Pago exitoso. Vuelto: S/. %.2f", result.ChangeAmount.InexactFloat64()),
		Purchase: toPurchaseResponse(result),
	})
}
