package models

// PurchaseRequest est l'instantané envoyé à POST /Pedido/Registrar au moment
// de la validation du panier. Les ids de détail sont des ids PRODUIT, pas
// des ids de ligne de panier.
type PurchaseRequest struct {
	BuyerID         string         `json:"idUsuario"`
	PaymentMethodID string         `json:"idMetodoPago"`
	Details         []PurchaseLine `json:"detalles"`
}

type PurchaseLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}
