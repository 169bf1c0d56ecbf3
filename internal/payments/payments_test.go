package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sisinfo_gateway/internal/models"
)

type fakeLister struct {
	methods []models.PaymentMethod
	err     error
}

func (f *fakeLister) ListPaymentMethods(context.Context) ([]models.PaymentMethod, error) {
	return f.methods, f.err
}

func TestActiveMethodsFiltersByStatus(t *testing.T) {
	api := &fakeLister{methods: []models.PaymentMethod{
		{ID: "1", Name: "QR", Status: "Activo"},
		{ID: "2", Name: "Cheque", Status: "Inactivo"},
		{ID: "3", Name: "Efectivo", Status: "activo"}, // casse différente
		{ID: "4", Name: "Transferencia", Status: "ACTIVO"},
	}}
	svc := NewService(api, nil)

	methods, degraded := svc.ActiveMethods(context.Background())
	assert.False(t, degraded)
	require.Len(t, methods, 3)
	for _, m := range methods {
		assert.NotEqual(t, "Cheque", m.Name)
	}
}

func TestActiveMethodsFallsBackOnTransportFailure(t *testing.T) {
	svc := NewService(&fakeLister{err: errors.New("connexion refusée")}, nil)

	methods, degraded := svc.ActiveMethods(context.Background())
	assert.True(t, degraded)
	require.Len(t, methods, 3)
	names := []string{methods[0].Name, methods[1].Name, methods[2].Name}
	assert.Equal(t, []string{"QR", "Tarjeta de Crédito", "Efectivo"}, names)
}

func TestActiveMethodsFallsBackWhenNothingActive(t *testing.T) {
	api := &fakeLister{methods: []models.PaymentMethod{
		{ID: "1", Name: "QR", Status: "Inactivo"},
	}}
	svc := NewService(api, nil)

	methods, degraded := svc.ActiveMethods(context.Background())
	assert.True(t, degraded)
	assert.Len(t, methods, 3)
}

func TestActiveMethodsFallsBackOnEmptyList(t *testing.T) {
	svc := NewService(&fakeLister{}, nil)

	methods, degraded := svc.ActiveMethods(context.Background())
	assert.True(t, degraded)
	assert.Len(t, methods, 3)
}
