package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sisinfo_gateway/internal/models"
)

func TestLoginDecodesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Usuario/Login", r.URL.Path)

		var input LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "ana@x.com", input.Email)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","nombre":"Ana","rol":{"nombre":"Administrador"}}`))
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL).Login(context.Background(), "ana@x.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	require.NotNil(t, user.Role)
	assert.Equal(t, "Administrador", user.Role.Name)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", 400, `{"message":"stock insuficiente"}`, "stock insuficiente"},
		{"title field", 400, `{"title":"One or more validation errors occurred."}`, "One or more validation errors occurred."},
		{"errors map", 400, `{"errors":{"detalles":["La cantidad es obligatoria"]}}`, "erreurs de validation: La cantidad es obligatoria"},
		{"empty body", 503, ``, "erreur 503 de l'API amont"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).ListProducts(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.want, apiErr.Error())
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // plus personne n'écoute

	_, err := NewClient(srv.URL).ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSlowUpstreamIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := &Client{baseURL: srv.URL, http: &http.Client{Timeout: 50 * time.Millisecond}}
	_, err := c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestContextDeadlineIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).ListProducts(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRegisterOrderSendsPurchaseShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Pedido/Registrar", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p1","fecha_pedido":"2026-08-29","total":348,"id_usuario":"u1","id_metodo_pago":"mp1"}`))
	}))
	defer srv.Close()

	req := models.PurchaseRequest{
		BuyerID:         "u1",
		PaymentMethodID: "mp1",
		Details: []models.PurchaseLine{
			{ProductID: "prod-a", Quantity: 3},
		},
	}
	order, err := NewClient(srv.URL).RegisterOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "p1", order.ID)

	assert.Equal(t, "u1", got["idUsuario"])
	assert.Equal(t, "mp1", got["idMetodoPago"])
	details, ok := got["detalles"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	first := details[0].(map[string]any)
	assert.Equal(t, "prod-a", first["id"])
	assert.Equal(t, float64(3), first["cantidad"])
}

func TestDeleteOrderHitsEliminar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Pedido/Eliminar/p1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL).DeleteOrder(context.Background(), "p1"))
}

func TestSalesByPeriodDefaultsToMonthly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ReportesVentas/PorPeriodo", r.URL.Path)
		assert.Equal(t, "mensual", r.URL.Query().Get("period"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"periodo":"2026-01","totalCantidad":12,"totalMonto":1500.5}]`))
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL).SalesByPeriod(context.Background(), ReportRange{Start: "2026-01-01"}, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-01", rows[0].Period)
	assert.Equal(t, 12, rows[0].TotalQuantity)
}
