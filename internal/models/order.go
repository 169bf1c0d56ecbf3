package models

// Order reflète le DTO Pedido de l'API amont.
type Order struct {
	ID              string        `json:"id"`
	OrderDate       string        `json:"fecha_pedido"`
	Total           float64       `json:"total"`
	Status          string        `json:"estado,omitempty"`
	UserID          string        `json:"id_usuario"`
	PaymentMethodID string        `json:"id_metodo_pago"`
	Details         []OrderDetail `json:"detalles,omitempty"`
}

// OrderDetail est une ligne de pedido telle que renvoyée par l'amont.
type OrderDetail struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"pedidoId"`
	ProductID   string  `json:"productoId"`
	ProductName string  `json:"productoNombre,omitempty"`
	Quantity    int     `json:"cantidad"`
	Price       float64 `json:"precio"`
}

// CreateOrderInput est le corps envoyé à PUT /Pedido/Actualizar (édition
// console) ; la création passe par /Pedido/Registrar avec PurchaseRequest.
type CreateOrderInput struct {
	OrderDate       string              `json:"fecha_pedido"`
	Total           float64             `json:"total"`
	Status          string              `json:"estado,omitempty"`
	UserID          string              `json:"id_usuario"`
	PaymentMethodID string              `json:"id_metodo_pago"`
	Details         []CreateDetailInput `json:"detalles"`
}

type CreateDetailInput struct {
	OrderID   string  `json:"pedidoId,omitempty"`
	ProductID string  `json:"productoId"`
	Quantity  int     `json:"cantidad"`
	Price     float64 `json:"precio"`
}
