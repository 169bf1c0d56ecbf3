package cart

import "errors"

// Signaux du moteur de panier. Toute opération refusée laisse le panier
// strictement inchangé.
var (
	ErrOutOfStock       = errors.New("produit sans stock disponible")
	ErrStockExceeded    = errors.New("stock disponible insuffisant")
	ErrInvalidQuantity  = errors.New("quantité invalide")
	ErrEmptyCart        = errors.New("le panier est vide")
	ErrNoPaymentMethod  = errors.New("aucun moyen de paiement sélectionné")
	ErrNotAuthenticated = errors.New("utilisateur non authentifié")
)
