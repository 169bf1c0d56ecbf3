package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/cache"
	"sisinfo_gateway/internal/cart"
	"sisinfo_gateway/internal/config"
	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/handlers/admin"
	"sisinfo_gateway/internal/middleware"
	"sisinfo_gateway/internal/payments"
	"sisinfo_gateway/internal/routes"
	"sisinfo_gateway/internal/session"
)

func main() {
	config.Load()

	if err := cache.InitRedis(); err != nil {
		log.Fatal("❌ Impossible d'initialiser Redis : ", err)
	}
	defer cache.CloseRedis()

	middleware.InitCookieStore()

	api := backend.NewClientFromEnv()
	log.Println("✅ Client API commerce initialisé")

	gate := session.NewGate(session.NewRedisStore(cache.RedisClient), api)
	carts := cart.NewStore(cache.RedisClient)
	methods := payments.NewService(api, cache.RedisClient)
	taxRate := config.TaxRate()

	deps := routes.Deps{
		Gate:     gate,
		Auth:     handlers.NewAuthHandler(gate, carts),
		Cart:     handlers.NewCartHandler(api, carts, taxRate),
		Checkout: handlers.NewCheckoutHandler(api, carts, methods, cache.NewCheckoutLocks(cache.RedisClient)),
		Catalog:  handlers.NewCatalogHandler(api),
		Admin:    admin.NewHandler(api),
	}

	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Passerelle SISINFO lancée sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté : ", err)
	}
}
