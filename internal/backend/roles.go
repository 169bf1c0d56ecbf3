package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := c.do(ctx, http.MethodGet, "/Rol/Listar", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) GetRole(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	if err := c.do(ctx, http.MethodGet, "/Rol/Listar/"+id, nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) CreateRole(ctx context.Context, input models.Role) (*models.Role, error) {
	var role models.Role
	if err := c.do(ctx, http.MethodPost, "/Rol/Crear", input, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) UpdateRole(ctx context.Context, id string, input models.Role) (*models.Role, error) {
	var role models.Role
	if err := c.do(ctx, http.MethodPut, "/Rol/Actualizar/"+id, input, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Rol/"+id, nil, nil)
}
