package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

func (c *Client) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/MetodoPago/Listar", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *Client) GetPaymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/MetodoPago/Listar/"+id, nil, &method); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *Client) CreatePaymentMethod(ctx context.Context, input models.PaymentMethod) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := c.do(ctx, http.MethodPost, "/MetodoPago/Crear", input, &method); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *Client) UpdatePaymentMethod(ctx context.Context, id string, input models.PaymentMethod) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := c.do(ctx, http.MethodPut, "/MetodoPago/Actualizar/"+id, input, &method); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *Client) DeletePaymentMethod(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/MetodoPago/"+id, nil, nil)
}
