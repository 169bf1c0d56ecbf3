package models

type Role struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}
