package cart

import (
	"github.com/google/uuid"

	"sisinfo_gateway/internal/models"
)

// DefaultTaxRate : 16% d'IVA, le taux appliqué par la boutique d'origine.
const DefaultTaxRate = 0.16

// Line est une entrée de panier. LineID est stable pour la durée de la
// session et distinct de l'id produit. Product est l'instantané connu au
// moment de l'ajout : le stock peut être périmé vis-à-vis de l'amont, le
// moteur ne garantit l'invariant 1 ≤ Quantity ≤ Stock que contre cet
// instantané.
type Line struct {
	LineID   string         `json:"lineId"`
	Product  models.Product `json:"producto"`
	Quantity int            `json:"cantidad"`
}

// Cart est une collection ordonnée de lignes (ordre d'insertion, significatif
// pour l'affichage uniquement).
type Cart struct {
	Lines []Line `json:"items"`
}

type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"iva"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"totalItems"`
}

func New() *Cart {
	return &Cart{}
}

// Add ajoute une unité du produit. Ligne existante sous le stock → +1 ;
// ligne au plafond → ErrStockExceeded ; produit absent avec stock > 0 →
// nouvelle ligne à 1 ; stock nul → ErrOutOfStock.
func (c *Cart) Add(product models.Product) error {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			if c.Lines[i].Quantity >= c.Lines[i].Product.Stock {
				return ErrStockExceeded
			}
			c.Lines[i].Quantity++
			return nil
		}
	}

	if product.Stock <= 0 {
		return ErrOutOfStock
	}
	c.Lines = append(c.Lines, Line{
		LineID:   uuid.NewString(),
		Product:  product,
		Quantity: 1,
	})
	return nil
}

// Remove supprime la ligne sans condition ; absente → no-op (idempotent).
func (c *Cart) Remove(lineID string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.LineID != lineID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// SetQuantity fixe la quantité exacte d'une ligne. Refuse (sans modifier le
// panier) toute valeur hors de [1, stock]. Ligne inconnue → no-op.
func (c *Cart) SetQuantity(lineID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			if quantity > c.Lines[i].Product.Stock {
				return ErrStockExceeded
			}
			c.Lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Totals calcule les montants dérivés en pleine précision ; l'arrondi à
// deux décimales est l'affaire de l'affichage.
func (c *Cart) Totals(taxRate float64) Totals {
	var t Totals
	for _, line := range c.Lines {
		t.Subtotal += line.Product.UnitPrice * float64(line.Quantity)
		t.ItemCount += line.Quantity
	}
	t.Tax = t.Subtotal * taxRate
	t.Total = t.Subtotal + t.Tax
	return t
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear vide le panier (après achat réussi ou remise à zéro explicite).
func (c *Cart) Clear() {
	c.Lines = nil
}

// BuildPurchaseRequest construit l'instantané d'achat envoyé à l'amont.
// Les détails portent l'id PRODUIT de chaque ligne, pas l'id de ligne.
func (c *Cart) BuildPurchaseRequest(buyerID, paymentMethodID string) (models.PurchaseRequest, error) {
	if c.IsEmpty() {
		return models.PurchaseRequest{}, ErrEmptyCart
	}
	if paymentMethodID == "" {
		return models.PurchaseRequest{}, ErrNoPaymentMethod
	}
	if buyerID == "" {
		return models.PurchaseRequest{}, ErrNotAuthenticated
	}

	req := models.PurchaseRequest{
		BuyerID:         buyerID,
		PaymentMethodID: paymentMethodID,
		Details:         make([]models.PurchaseLine, 0, len(c.Lines)),
	}
	for _, line := range c.Lines {
		req.Details = append(req.Details, models.PurchaseLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	return req, nil
}
