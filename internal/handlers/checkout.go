package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/cart"
	"sisinfo_gateway/internal/payments"
)

// Durée maximale pendant laquelle la double soumission est bloquée ; couvre
// largement le délai amont de toute requête d'achat.
const checkoutLockTTL = 30 * time.Second

// CartStore abstrait la persistance du panier ; *cart.Store la satisfait.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, ct *cart.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// SubmitLocker est le verrou anti double soumission ; *cache.CheckoutLocks
// la satisfait.
type SubmitLocker interface {
	Acquire(ctx context.Context, sessionID string, duration time.Duration) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

type CheckoutHandler struct {
	api     *backend.Client
	carts   CartStore
	methods *payments.Service
	locks   SubmitLocker
}

func NewCheckoutHandler(api *backend.Client, carts CartStore, methods *payments.Service, locks SubmitLocker) *CheckoutHandler {
	return &CheckoutHandler{api: api, carts: carts, methods: methods, locks: locks}
}

// GET /api/checkout/metodos-pago — moyens actifs, liste de secours comprise.
func (h *CheckoutHandler) PaymentMethods(c *gin.Context) {
	methods, degraded := h.methods.ActiveMethods(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"metodos":  methods,
		"fallback": degraded,
	})
}

// POST /api/checkout — construit l'instantané d'achat et le soumet à
// l'amont. Succès → panier vidé ; échec → panier intact pour réessayer.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var input struct {
		PaymentMethodID string `json:"idMetodoPago"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sid := c.GetString("sid")
	userID := c.GetString("user_id")

	// Verrou anti double clic : une seule soumission en vol par session.
	locked, err := h.locks.Acquire(c.Request.Context(), sid, checkoutLockTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur verrou d'achat"})
		return
	}
	if !locked {
		c.JSON(http.StatusConflict, gin.H{"error": "Un achat est déjà en cours pour cette session"})
		return
	}
	defer func() {
		if err := h.locks.Release(context.WithoutCancel(c.Request.Context()), sid); err != nil {
			log.Printf("⚠️ Verrou d'achat de %s non libéré: %v", sid, err)
		}
	}()

	ct, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	req, err := ct.BuildPurchaseRequest(userID, input.PaymentMethodID)
	if err != nil {
		h.writeBuildError(c, err)
		return
	}

	order, err := h.api.RegisterOrder(c.Request.Context(), req)
	if err != nil {
		// Le panier n'est pas touché : l'utilisateur peut corriger et
		// soumettre à nouveau.
		WriteAPIError(c, err)
		return
	}

	if err := h.carts.Clear(context.WithoutCancel(c.Request.Context()), sid); err != nil {
		log.Printf("⚠️ Panier de %s non vidé après achat: %v", sid, err)
	}

	log.Printf("✅ Achat enregistré pour %s (pedido %s)", userID, order.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Achat réalisé avec succès",
		"pedido":  order,
	})
}

func (h *CheckoutHandler) writeBuildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrEmptyCart), errors.Is(err, cart.ErrNoPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
