package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

func (c *Client) ListDetails(ctx context.Context) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/Detalle/Listar", nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) GetDetail(ctx context.Context, id string) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/Detalle/Listar/"+id, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreateDetail(ctx context.Context, input models.CreateDetailInput) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := c.do(ctx, http.MethodPost, "/Detalle/Crear", input, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) UpdateDetail(ctx context.Context, id string, input models.CreateDetailInput) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := c.do(ctx, http.MethodPut, "/Detalle/Actualizar/"+id, input, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) DeleteDetail(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Detalle/"+id, nil, nil)
}
