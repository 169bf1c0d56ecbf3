package models

// DTOs des rapports de ventes exposés par /ReportesVentas.

type SalesByPeriod struct {
	Period        string  `json:"periodo"`
	TotalQuantity int     `json:"totalCantidad"`
	TotalAmount   float64 `json:"totalMonto"`
}

type TopProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"nombre"`
	QuantitySold int     `json:"cantidadVendida"`
	SalesAmount  float64 `json:"montoVenta"`
}

type SalesByCustomer struct {
	ID            string  `json:"id"`
	Name          string  `json:"nombre"`
	TotalAmount   float64 `json:"totalCompras"`
	TotalQuantity int     `json:"totalCantidad"`
	OrderCount    int     `json:"pedidosCount"`
}

type CancelledOrder struct {
	ID        string  `json:"id"`
	OrderDate string  `json:"fecha_pedido"`
	Total     float64 `json:"total"`
	Status    string  `json:"estado"`
}
