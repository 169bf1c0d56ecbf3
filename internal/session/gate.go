package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/models"
)

// Chemins de redirection côté console : flux d'authentification et vue
// d'atterrissage par défaut d'un utilisateur connecté.
const (
	RouteAuth    = "/auth"
	RouteCatalog = "/productos"
)

var (
	// ErrCredentials : échec d'identification générique. On ne distingue
	// jamais "compte inconnu" de "mot de passe erroné" pour le client.
	ErrCredentials = errors.New("identifiants incorrects")
	// ErrValidation : refus local, avant tout appel réseau.
	ErrValidation = errors.New("validation échouée")
)

// AuthBackend est la partie de l'API amont dont la porte a besoin.
// *backend.Client la satisfait.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, input backend.RegisterInput) (*models.User, error)
}

// Gate répond à « y a-t-il un utilisateur connecté, et peut-il voir X ».
// L'état par session vit dans le Store injecté ; la porte elle-même est
// sans état et testable sans HTTP.
type Gate struct {
	store Store
	auth  AuthBackend
}

func NewGate(store Store, auth AuthBackend) *Gate {
	return &Gate{store: store, auth: auth}
}

func (g *Gate) Store() Store {
	return g.store
}

// Login délègue à l'amont puis persiste le snapshot. Sur échec, l'état
// antérieur reste intact. Le texte d'erreur amont est journalisé mais jamais
// relayé au client (pas d'énumération de comptes).
func (g *Gate) Login(ctx context.Context, sessionID, email, password string) (*Snapshot, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: tous les champs sont obligatoires", ErrValidation)
	}

	user, err := g.auth.Login(ctx, email, password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			log.Printf("❌ Login refusé par l'amont (%d): %v", apiErr.StatusCode, apiErr)
			return nil, ErrCredentials
		}
		return nil, err
	}

	role := roleName(user)
	if role == "" {
		// L'amont ne renvoie pas toujours le rôle ; un snapshot sans
		// rôle casserait les décisions d'accès.
		role = RoleCustomer
	}

	snap := &Snapshot{
		UserID: user.ID,
		Name:   user.Name,
		Email:  email,
		Role:   role,
	}
	if err := g.store.Save(ctx, sessionID, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// RegisterForm porte les champs du formulaire d'inscription. La validation
// est locale et bloque toute soumission avant le moindre appel réseau.
type RegisterForm struct {
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_paterno"`
	MaternalSurname string `json:"apellido_materno"`
	Email           string `json:"correo"`
	Phone           string `json:"telefono"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (f RegisterForm) validate() error {
	if f.Name == "" || f.PaternalSurname == "" || f.Email == "" || f.Password == "" {
		return fmt.Errorf("%w: les champs marqués * sont obligatoires", ErrValidation)
	}
	if f.Password != f.ConfirmPassword {
		return fmt.Errorf("%w: les mots de passe ne correspondent pas", ErrValidation)
	}
	if len(f.Password) < 6 {
		return fmt.Errorf("%w: le mot de passe doit contenir au moins 6 caractères", ErrValidation)
	}
	return nil
}

// Register valide localement puis crée le compte en amont. Un échec amont
// est relayé en erreur générique, l'état antérieur reste intact.
func (g *Gate) Register(ctx context.Context, sessionID string, form RegisterForm) (*Snapshot, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	user, err := g.auth.Register(ctx, backend.RegisterInput{
		Name:            form.Name,
		PaternalSurname: form.PaternalSurname,
		MaternalSurname: form.MaternalSurname,
		Email:           form.Email,
		Phone:           form.Phone,
		Password:        form.Password,
	})
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			log.Printf("❌ Inscription refusée par l'amont (%d): %v", apiErr.StatusCode, apiErr)
			return nil, errors.New("erreur lors de la création du compte")
		}
		return nil, err
	}

	role := roleName(user)
	if role == "" {
		// L'amont ne renvoie pas toujours le rôle à l'inscription.
		role = RoleCustomer
	}

	snap := &Snapshot{
		UserID: user.ID,
		Name:   user.Name,
		Email:  form.Email,
		Role:   role,
	}
	if err := g.store.Save(ctx, sessionID, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Logout détruit la session sans condition ; pas de mode d'échec.
func (g *Gate) Logout(ctx context.Context, sessionID string) {
	if err := g.store.Delete(ctx, sessionID); err != nil {
		log.Printf("⚠️ Suppression de session %s impossible: %v", sessionID, err)
	}
}

// Current charge le snapshot persisté, s'il existe.
func (g *Gate) Current(ctx context.Context, sessionID string) (*Snapshot, error) {
	return g.store.Load(ctx, sessionID)
}

// Decision est le verdict d'accès à une ressource.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// Resolve est une fonction pure de (snapshot, rôle requis) : pas
// d'utilisateur → redirection vers le flux d'authentification ; rôle requis
// non satisfait → redirection vers la vue par défaut ; sinon accès accordé.
func Resolve(snap *Snapshot, requiredRole string) Decision {
	if snap == nil {
		return Decision{Redirect: RouteAuth}
	}
	if requiredRole != "" && !SameRole(snap.Role, requiredRole) {
		return Decision{Redirect: RouteCatalog}
	}
	return Decision{Allowed: true}
}

func roleName(user *models.User) string {
	if user.Role != nil {
		return user.Role.Name
	}
	return ""
}
