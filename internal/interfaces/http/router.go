package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/strapped-store/tienda-api/internal/application/auth"
	"github.com/strapped-store/tienda-api/internal/application/checkout"
	"github.com/strapped-store/tienda-api/internal/application/usecase"
	"github.com/strapped-store/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *usecase.CartUseCase
	CheckoutUC *checkout.CheckoutUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. El gate de autorización se compone por
// grupo de rutas: nunca queda a criterio de cada handler.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	cartHandler := NewCartHandler(deps.CartUC)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)

	// Auth (público)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Catálogo (lectura pública)
	app.Get("/products", productHandler.List)
	app.Get("/product/:id", productHandler.GetByID)

	// Catálogo (escritura, solo admin)
	admin := app.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	// Carrito (requiere token, cualquier rol)
	cart := app.Group("/cart", AuthMiddleware(deps.JWTSecret))
	cart.Post("/add", cartHandler.Add)
	cart.Get("/:userId", cartHandler.View)
	cart.Delete("/delete/:id", cartHandler.Remove)

	// Checkout (requiere token, cualquier rol)
	app.Post("/crear_preferencia", AuthMiddleware(deps.JWTSecret), checkoutHandler.CreatePreference)
}
