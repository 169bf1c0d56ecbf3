package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/Pedido/Listar", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/Pedido/Listar/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// RegisterOrder soumet un achat construit depuis le panier. En cas d'échec
// l'appelant conserve son panier intact pour permettre un nouvel essai.
func (c *Client) RegisterOrder(ctx context.Context, req models.PurchaseRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/Pedido/Registrar", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/Pedido/Crear", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, input models.CreateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/Pedido/Actualizar/"+id, input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Pedido/Eliminar/"+id, nil, nil)
}
