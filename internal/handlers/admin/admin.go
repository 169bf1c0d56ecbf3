// Package admin expose la surface console réservée au rôle administrador :
// CRUD de passage vers l'API amont et rapports de ventes.
package admin

import (
	"sisinfo_gateway/internal/backend"
)

type Handler struct {
	api *backend.Client
}

func NewHandler(api *backend.Client) *Handler {
	return &Handler{api: api}
}
