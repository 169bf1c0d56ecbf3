package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sisinfo_gateway/internal/session"
	"sisinfo_gateway/internal/utils"
)

func newRouter(gate *session.Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("", AuthRequired(gate))
	authed.GET("/cualquiera", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	authed.GET("/solo-admin", RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func seedSession(t *testing.T, store session.Store, sid, role string) string {
	t.Helper()
	snap := session.Snapshot{UserID: "u1", Name: "Ana", Email: "ana@x.com", Role: role}
	require.NoError(t, store.Save(context.Background(), sid, &snap))
	token, err := utils.GenerateJWT(sid, snap)
	require.NoError(t, err)
	return token
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	r := newRouter(session.NewGate(session.NewMemoryStore(), nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cualquiera", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	r := newRouter(session.NewGate(session.NewMemoryStore(), nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cualquiera", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredLoadsSnapshotIntoContext(t *testing.T) {
	store := session.NewMemoryStore()
	r := newRouter(session.NewGate(store, nil))
	token := seedSession(t, store, "sid-1", "Administrador")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cualquiera", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"Administrador"`)
}

func TestAuthRequiredRejectsDestroyedSession(t *testing.T) {
	store := session.NewMemoryStore()
	gate := session.NewGate(store, nil)
	r := newRouter(gate)
	token := seedSession(t, store, "sid-1", "Administrador")

	// logout : le jeton est encore cryptographiquement valide mais la
	// session n'existe plus
	gate.Logout(context.Background(), "sid-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cualquiera", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleMatchesCaseInsensitively(t *testing.T) {
	store := session.NewMemoryStore()
	r := newRouter(session.NewGate(store, nil))
	token := seedSession(t, store, "sid-1", "ADMINISTRADOR")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	store := session.NewMemoryStore()
	r := newRouter(session.NewGate(store, nil))
	token := seedSession(t, store, "sid-1", "Cliente")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), session.RouteCatalog)
}
