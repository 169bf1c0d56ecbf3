package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"sisinfo_gateway/internal/cart"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// TaxRate lit CART_TAX_RATE ; défaut 0.16 (16% d'IVA).
func TaxRate() float64 {
	raw := os.Getenv("CART_TAX_RATE")
	if raw == "" {
		return cart.DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Printf("⚠️ CART_TAX_RATE invalide (%q), taux par défaut appliqué", raw)
		return cart.DefaultTaxRate
	}
	return rate
}
