package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nombre,omitempty"`
	Description string  `json:"descripcion,omitempty"`
	UnitPrice   float64 `json:"precio_unitario,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Status      string  `json:"estado,omitempty"`
	ImageURL    string  `json:"imagen_url,omitempty"`
}

// CreateProductInput est le corps envoyé à POST /Producto/Crear.
type CreateProductInput struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	UnitPrice   float64 `json:"precio_unitario"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imagen_url,omitempty"`
}
