package http

import (
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

// Mapeos entidad -> DTO de respuesta.

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, DNI: u.DNI, Role: u.Role}
}

func toDoctorResponse(d *entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Schedule: d.Schedule}
}

func toDoctorResponses(list []*entity.Doctor) []dto.DoctorResponse {
	out := make([]dto.DoctorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDoctorResponse(d))
	}
	return out
}

func toProductResponse(p *entity.PharmacyProduct) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func toProductResponses(list []*entity.PharmacyProduct) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toAppointmentResponse(v *entity.AppointmentWithDoctor) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		Date:        v.Date,
		Time:        v.Time,
		IsCancelled: v.IsCancelled,
		Doctor:      toDoctorResponse(&v.Doctor),
	}
}

func toAppointmentResponses(list []*entity.AppointmentWithDoctor) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toAppointmentResponse(v))
	}
	return out
}

func toPurchaseResponse(p *entity.PurchaseWithItems) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:          it.ProductID,
			ProductName:        it.ProductName,
			ProductDescription: it.ProductDescription,
			ProductPrice:       it.ProductPrice,
			Quantity:           it.Quantity,
		})
	}
	return dto.PurchaseResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		PaidAmount:   p.PaidAmount,
		ChangeAmount: p.ChangeAmount,
		Items:        items,
	}
}

func toPurchaseResponses(list []*entity.PurchaseWithItems) []dto.PurchaseResponse {
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out
}

func toCartResponse(c *cart.Cart, warning string) dto.CartResponse {
	items := c.Items()
	out := dto.CartResponse{
		Items:   make([]dto.CartItemResponse, 0, len(items)),
		Total:   c.Total(),
		Paid:    c.Paid(),
		Change:  c.Change(),
		Warning: warning,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			Product:  toProductResponse(&it.Product),
			Quantity: it.Quantity,
			Subtotal: it.Subtotal(),
		})
	}
	return out
}
