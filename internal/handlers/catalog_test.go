package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sisinfo_gateway/internal/backend"
)

func catalogRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(backend.NewClient(upstreamURL))
	r := gin.New()
	r.GET("/api/catalog/productos", h.ListProducts)
	r.GET("/api/catalog/productos/:id", h.GetProduct)
	return r
}

func TestListProductsProxiesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Producto/Listar", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"prod-a","nombre":"Teclado","precio_unitario":100,"stock":5}]`))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	catalogRouter(upstream.URL).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/productos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nombre":"Teclado"`)
}

func TestUpstreamErrorStatusIsRelayed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Producto no encontrado"}`))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	catalogRouter(upstream.URL).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/productos/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Producto no encontrado")
}

func TestUnreachableUpstreamIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close()

	w := httptest.NewRecorder()
	catalogRouter(upstream.URL).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/productos", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
