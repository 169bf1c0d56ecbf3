package payments

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sisinfo_gateway/internal/models"
)

const (
	cacheKey = "metodos_pago:activos"
	cacheTTL = 5 * time.Minute
)

// Liste de secours servie quand l'amont est injoignable ou ne renvoie aucun
// moyen actif. Comportement assumé de la console d'origine (mode démo hors
// ligne) ; jamais silencieux, toujours journalisé.
var fallbackMethods = []models.PaymentMethod{
	{ID: "70587813-b3da-4e17-710f-08de14e61230", Name: "QR", Status: "Activo"},
	{ID: "80587813-b3da-4e17-710f-08de14e61231", Name: "Tarjeta de Crédito", Status: "Activo"},
	{ID: "90587813-b3da-4e17-710f-08de14e61232", Name: "Efectivo", Status: "Activo"},
}

// Lister est la partie de l'API amont utilisée ici ; *backend.Client la
// satisfait.
type Lister interface {
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

// Service expose les moyens de paiement utilisables à la caisse.
type Service struct {
	api Lister
	rdb *redis.Client // optionnel, nil = pas de cache
}

func NewService(api Lister, rdb *redis.Client) *Service {
	return &Service{api: api, rdb: rdb}
}

// ActiveMethods renvoie les moyens dont l'estado vaut "Activo" (comparaison
// insensible à la casse). Le booléen indique le mode dégradé : liste de
// secours suite à un échec transport ou à une liste active vide.
func (s *Service) ActiveMethods(ctx context.Context) ([]models.PaymentMethod, bool) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, false
	}

	methods, err := s.api.ListPaymentMethods(ctx)
	if err != nil {
		log.Printf("⚠️ Moyens de paiement injoignables, liste de secours servie: %v", err)
		return fallbackMethods, true
	}

	active := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if strings.EqualFold(m.Status, "Activo") {
			active = append(active, m)
		}
	}
	if len(active) == 0 {
		log.Println("⚠️ Aucun moyen de paiement actif en amont, liste de secours servie")
		return fallbackMethods, true
	}

	s.toCache(ctx, active)
	return active, false
}

func (s *Service) fromCache(ctx context.Context) []models.PaymentMethod {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil
	}
	var methods []models.PaymentMethod
	if json.Unmarshal([]byte(data), &methods) != nil || len(methods) == 0 {
		return nil
	}
	return methods
}

func (s *Service) toCache(ctx context.Context, methods []models.PaymentMethod) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(methods)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, cacheKey, data, cacheTTL)
}
