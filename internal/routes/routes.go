package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/handlers/admin"
	"sisinfo_gateway/internal/middleware"
	"sisinfo_gateway/internal/session"
)

// Deps regroupe ce que les routes branchent ; tout est construit dans main.
type Deps struct {
	Gate     *session.Gate
	Auth     *handlers.AuthHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Catalog  *handlers.CatalogHandler
	Admin    *admin.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(cors.New(corsConfig()))

	api := r.Group("/api")

	// Flux d'authentification, seul accès sans session.
	auth := api.Group("/auth")
	auth.POST("/login", d.Auth.Login)
	auth.POST("/register", d.Auth.Register)

	authed := api.Group("", middleware.AuthRequired(d.Gate))
	authed.POST("/auth/logout", d.Auth.Logout)
	authed.GET("/auth/me", d.Auth.Me)
	authed.GET("/auth/acceso", d.Auth.ResolveAccess)

	// Vitrine + panier : tout utilisateur connecté.
	authed.GET("/catalog/productos", d.Catalog.ListProducts)
	authed.GET("/catalog/productos/:id", d.Catalog.GetProduct)
	authed.GET("/catalog/categorias", d.Catalog.ListCategories)

	authed.GET("/cart", d.Cart.Get)
	authed.POST("/cart/items", d.Cart.AddItem)
	authed.PUT("/cart/items/:lineId", d.Cart.SetQuantity)
	authed.DELETE("/cart/items/:lineId", d.Cart.RemoveItem)
	authed.DELETE("/cart", d.Cart.Clear)

	authed.GET("/checkout/metodos-pago", d.Checkout.PaymentMethods)
	authed.POST("/checkout", d.Checkout.Submit)

	// Console d'administration : rôle administrador obligatoire.
	adm := authed.Group("/admin", middleware.RequireAdmin)

	adm.GET("/usuarios", d.Admin.ListUsers)
	adm.GET("/usuarios/:id", d.Admin.GetUser)
	adm.POST("/usuarios", d.Admin.CreateUser)

	adm.GET("/roles", d.Admin.ListRoles)
	adm.GET("/roles/:id", d.Admin.GetRole)
	adm.POST("/roles", d.Admin.CreateRole)
	adm.PUT("/roles/:id", d.Admin.UpdateRole)
	adm.DELETE("/roles/:id", d.Admin.DeleteRole)

	adm.GET("/productos", d.Admin.ListProducts)
	adm.GET("/productos/:id", d.Admin.GetProduct)
	adm.POST("/productos", d.Admin.CreateProduct)
	adm.PUT("/productos/:id", d.Admin.UpdateProduct)
	adm.DELETE("/productos/:id", d.Admin.DeleteProduct)

	adm.GET("/categorias", d.Admin.ListCategories)
	adm.GET("/categorias/:id", d.Admin.GetCategory)
	adm.POST("/categorias", d.Admin.CreateCategory)
	adm.PUT("/categorias/:id", d.Admin.UpdateCategory)
	adm.DELETE("/categorias/:id", d.Admin.DeleteCategory)

	adm.GET("/pedidos", d.Admin.ListOrders)
	adm.GET("/pedidos/:id", d.Admin.GetOrder)
	adm.POST("/pedidos", d.Admin.CreateOrder)
	adm.PUT("/pedidos/:id", d.Admin.UpdateOrder)
	adm.DELETE("/pedidos/:id", d.Admin.DeleteOrder)

	adm.GET("/detalles", d.Admin.ListDetails)
	adm.GET("/detalles/:id", d.Admin.GetDetail)
	adm.POST("/detalles", d.Admin.CreateDetail)
	adm.PUT("/detalles/:id", d.Admin.UpdateDetail)
	adm.DELETE("/detalles/:id", d.Admin.DeleteDetail)

	adm.GET("/metodos-pago", d.Admin.ListPaymentMethods)
	adm.GET("/metodos-pago/:id", d.Admin.GetPaymentMethod)
	adm.POST("/metodos-pago", d.Admin.CreatePaymentMethod)
	adm.PUT("/metodos-pago/:id", d.Admin.UpdatePaymentMethod)
	adm.DELETE("/metodos-pago/:id", d.Admin.DeletePaymentMethod)

	adm.GET("/reportes/por-periodo", d.Admin.SalesByPeriod)
	adm.GET("/reportes/productos-mas-vendidos", d.Admin.TopProducts)
	adm.GET("/reportes/por-cliente", d.Admin.SalesByCustomer)
	adm.GET("/reportes/cancelados", d.Admin.CancelledOrders)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
