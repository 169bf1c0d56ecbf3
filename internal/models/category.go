package models

type Category struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"nombre"`
	Description  string `json:"descripcion,omitempty"`
	RegisteredAt string `json:"fecha_registro,omitempty"`
}
