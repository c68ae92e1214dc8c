package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/auth"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/booking"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/doctors"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/pharmacy"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/purchases"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/session"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	DoctorUC    *doctors.UseCase
	PharmacyUC  *pharmacy.UseCase
	BookingUC   *booking.UseCase
	PurchasesUC *purchases.UseCase
	CheckoutUC  *cart.CheckoutUseCase
	Carts       *cart.Manager
	Session     *session.State
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.Carts)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authProtected := protected.Group("/auth")
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/me", authHandler.Me)
	authProtected.Put("/profile", authHandler.UpdateProfile)

	// Doctors: lectura para todos los autenticados, escritura solo admin
	doctorsGroup := protected.Group("/doctors")
	doctorHandler := NewDoctorHandler(deps.DoctorUC)
	doctorsGroup.Get("/", doctorHandler.List)
	doctorsGroup.Get("/:id", doctorHandler.GetByID)
	doctorsGroup.Post("/", adminOnly, doctorHandler.Create)
	doctorsGroup.Put("/:id", adminOnly, doctorHandler.Update)
	doctorsGroup.Delete("/:id", adminOnly, doctorHandler.Delete)

	// Products: lectura para todos los autenticados, escritura solo admin
	productsGroup := protected.Group("/products")
	productHandler := NewProductHandler(deps.PharmacyUC)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/:id", productHandler.GetByID)
	productsGroup.Post("/", adminOnly, productHandler.Create)
	productsGroup.Put("/:id", adminOnly, productHandler.Update)
	productsGroup.Delete("/:id", adminOnly, productHandler.Delete)

	// Appointments
	appointmentsGroup := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.BookingUC)
	appointmentsGroup.Post("/", appointmentHandler.Book)
	appointmentsGroup.Get("/mine", appointmentHandler.Mine)
	appointmentsGroup.Get("/", adminOnly, appointmentHandler.ListAll)
	appointmentsGroup.Post("/:id/cancel", appointmentHandler.Cancel)
	appointmentsGroup.Delete("/:id", adminOnly, appointmentHandler.Delete)

	// Cart
	cartGroup := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.Carts, deps.PharmacyUC, deps.CheckoutUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)
	cartGroup.Post("/paid", cartHandler.SetPaid)
	cartGroup.Post("/scan", cartHandler.Scan)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Purchases
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchasesUC)
	purchasesGroup.Get("/mine", purchaseHandler.Mine)
	purchasesGroup.Get("/", adminOnly, purchaseHandler.ListAll)
	purchasesGroup.Get("/:id/receipt", purchaseHandler.Receipt)
}
