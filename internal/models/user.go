package models

import "encoding/json"

// User reflète le DTO Usuario de l'API amont (champs espagnols sur le fil).
// telefono arrive tantôt en nombre, tantôt en chaîne selon l'endpoint,
// d'où le json.Number.
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"nombre,omitempty"`
	PaternalSurname string      `json:"apellido_paterno,omitempty"`
	MaternalSurname string      `json:"apellido_materno,omitempty"`
	Email           string      `json:"correo,omitempty"`
	Phone           json.Number `json:"telefono,omitempty"`
	RegisteredAt    string      `json:"fecha_registro,omitempty"`
	Status          string      `json:"estado,omitempty"`
	RoleID          string      `json:"id_rol,omitempty"`
	Role            *Role       `json:"rol,omitempty"`
}

// CreateUserInput est le corps envoyé à POST /Usuario/Crear.
type CreateUserInput struct {
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_paterno"`
	MaternalSurname string `json:"apellido_materno,omitempty"`
	Email           string `json:"correo"`
	Phone           string `json:"telefono,omitempty"`
	Password        string `json:"password"`
	RoleID          string `json:"id_rol,omitempty"`
}
