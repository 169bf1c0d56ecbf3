package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/cart"
)

type CartHandler struct {
	api     *backend.Client
	carts   *cart.Store
	taxRate float64
}

func NewCartHandler(api *backend.Client, carts *cart.Store, taxRate float64) *CartHandler {
	return &CartHandler{api: api, carts: carts, taxRate: taxRate}
}

func (h *CartHandler) respond(c *gin.Context, status int, ct *cart.Cart) {
	c.JSON(status, gin.H{
		"items":  ct.Lines,
		"totals": ct.Totals(h.taxRate),
	})
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	ct, err := h.carts.Get(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	h.respond(c, http.StatusOK, ct)
}

// POST /api/cart/items — ajoute une unité du produit. Le stock de référence
// est l'instantané amont relevé à l'instant de l'ajout.
func (h *CartHandler) AddItem(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, err := h.api.GetProduct(c.Request.Context(), input.ProductID)
	if err != nil {
		WriteAPIError(c, err)
		return
	}

	sid := c.GetString("sid")
	ct, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	if err := ct.Add(*product); err != nil {
		h.writeCartError(c, err)
		return
	}
	if err := h.carts.Save(c.Request.Context(), sid, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}
	h.respond(c, http.StatusOK, ct)
}

// PUT /api/cart/items/:lineId
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"cantidad"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sid := c.GetString("sid")
	ct, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	if err := ct.SetQuantity(c.Param("lineId"), input.Quantity); err != nil {
		h.writeCartError(c, err)
		return
	}
	if err := h.carts.Save(c.Request.Context(), sid, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}
	h.respond(c, http.StatusOK, ct)
}

// DELETE /api/cart/items/:lineId — idempotent.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid := c.GetString("sid")
	ct, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	ct.Remove(c.Param("lineId"))
	if err := h.carts.Save(c.Request.Context(), sid, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}
	h.respond(c, http.StatusOK, ct)
}

// DELETE /api/cart — remise à zéro explicite.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.GetString("sid")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrOutOfStock), errors.Is(err, cart.ErrStockExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
