package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
)

// CatalogHandler sert la vitrine client : lecture seule, tout rôle connecté.
type CatalogHandler struct {
	api *backend.Client
}

func NewCatalogHandler(api *backend.Client) *CatalogHandler {
	return &CatalogHandler{api: api}
}

// GET /api/catalog/productos
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/catalog/productos/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.api.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /api/catalog/categorias
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.api.ListCategories(c.Request.Context())
	if err != nil {
		WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
