package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/Categoria/Listar", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodGet, "/Categoria/Listar/"+id, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, input models.Category) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/Categoria/Crear", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, input models.Category) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPut, "/Categoria/Actualizar/"+id, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Categoria/"+id, nil, nil)
}
