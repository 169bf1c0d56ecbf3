package backend

import (
	"context"
	"net/http"

	"sisinfo_gateway/internal/models"
)

type LoginInput struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Login authentifie contre POST /Usuario/Login. Toute réponse non-2xx est
// un échec d'identification ; l'appelant ne doit pas relayer le détail.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/Usuario/Login", LoginInput{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type RegisterInput struct {
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_paterno"`
	MaternalSurname string `json:"apellido_materno,omitempty"`
	Email           string `json:"correo"`
	Phone           string `json:"telefono,omitempty"`
	Password        string `json:"password"`
}

// Register crée un compte via POST /Usuario/Registrar et renvoie la fiche
// utilisateur créée.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/Usuario/Registrar", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
