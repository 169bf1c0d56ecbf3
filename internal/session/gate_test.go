package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/models"
)

type fakeAuth struct {
	user       *models.User
	err        error
	loginCalls int
	lastInput  *backend.RegisterInput
}

func (f *fakeAuth) Login(context.Context, string, string) (*models.User, error) {
	f.loginCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuth) Register(_ context.Context, input backend.RegisterInput) (*models.User, error) {
	f.lastInput = &input
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func adminUser() *models.User {
	return &models.User{ID: "u1", Name: "Ana", Role: &models.Role{Name: "Administrador"}}
}

func validForm() RegisterForm {
	return RegisterForm{
		Name:            "Luis",
		PaternalSurname: "Pérez",
		Email:           "luis@x.com",
		Password:        "secreto1",
		ConfirmPassword: "secreto1",
	}
}

func TestLoginPersistsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, &fakeAuth{user: adminUser()})

	snap, err := gate.Login(context.Background(), "sid-1", "ana@x.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, "Administrador", snap.Role)

	loaded, err := store.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, *snap, *loaded)
}

func TestLoginFailureIsGenericAndLeavesStateUntouched(t *testing.T) {
	store := NewMemoryStore()
	upstream := &backend.APIError{StatusCode: 401, Message: "Usuario no encontrado"}
	gate := NewGate(store, &fakeAuth{err: upstream})

	snap, err := gate.Login(context.Background(), "sid-1", "bad@x.com", "wrong")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrCredentials)
	// le texte amont ne doit jamais fuiter vers le client
	assert.NotContains(t, err.Error(), "Usuario no encontrado")

	loaded, err := store.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoginDefaultsRoleToCustomer(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, &fakeAuth{user: &models.User{ID: "u1", Name: "Ana"}})

	snap, err := gate.Login(context.Background(), "sid-1", "ana@x.com", "secreto")
	require.NoError(t, err)
	// un snapshot sans rôle casserait Resolve ; l'absence de rol amont
	// retombe sur le rôle client
	assert.Equal(t, RoleCustomer, snap.Role)
}

func TestLoginTransportErrorsPassThrough(t *testing.T) {
	gate := NewGate(NewMemoryStore(), &fakeAuth{err: backend.ErrTimeout})

	_, err := gate.Login(context.Background(), "sid-1", "ana@x.com", "secreto")
	assert.ErrorIs(t, err, backend.ErrTimeout)
}

func TestLoginRequiresBothFields(t *testing.T) {
	auth := &fakeAuth{user: adminUser()}
	gate := NewGate(NewMemoryStore(), auth)

	_, err := gate.Login(context.Background(), "sid-1", "", "secreto")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = gate.Login(context.Background(), "sid-1", "ana@x.com", "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, auth.loginCalls, "la validation locale doit bloquer avant tout appel réseau")
}

func TestRegisterLocalValidation(t *testing.T) {
	cases := []struct {
		name   string
		mangle func(*RegisterForm)
	}{
		{"missing name", func(f *RegisterForm) { f.Name = "" }},
		{"missing paternal surname", func(f *RegisterForm) { f.PaternalSurname = "" }},
		{"missing email", func(f *RegisterForm) { f.Email = "" }},
		{"missing password", func(f *RegisterForm) { f.Password = "" }},
		{"password mismatch", func(f *RegisterForm) { f.ConfirmPassword = "otra" }},
		{"password too short", func(f *RegisterForm) { f.Password = "abc12"; f.ConfirmPassword = "abc12" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &fakeAuth{user: adminUser()}
			gate := NewGate(NewMemoryStore(), auth)

			form := validForm()
			tc.mangle(&form)

			_, err := gate.Register(context.Background(), "sid-1", form)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, auth.lastInput)
		})
	}
}

func TestRegisterDefaultsRoleToCustomer(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: "u2", Name: "Luis"}} // pas de rol renvoyé
	gate := NewGate(NewMemoryStore(), auth)

	snap, err := gate.Register(context.Background(), "sid-1", validForm())
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, snap.Role)

	require.NotNil(t, auth.lastInput)
	assert.Equal(t, "luis@x.com", auth.lastInput.Email)
}

func TestLogoutDestroysSession(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, &fakeAuth{user: adminUser()})

	_, err := gate.Login(context.Background(), "sid-1", "ana@x.com", "secreto")
	require.NoError(t, err)

	gate.Logout(context.Background(), "sid-1")
	loaded, err := store.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// pas de mode d'échec, même sur session déjà détruite
	gate.Logout(context.Background(), "sid-1")
}

func TestResolve(t *testing.T) {
	admin := &Snapshot{UserID: "u1", Role: "Administrador"}

	cases := []struct {
		name     string
		snap     *Snapshot
		required string
		want     Decision
	}{
		{"no user redirects to auth", nil, "", Decision{Redirect: RouteAuth}},
		{"no user with required role still redirects to auth", nil, RoleAdmin, Decision{Redirect: RouteAuth}},
		{"no required role allows any user", admin, "", Decision{Allowed: true}},
		{"matching role allows", admin, "Administrador", Decision{Allowed: true}},
		{"role match is case-insensitive", admin, "administrador", Decision{Allowed: true}},
		{"role mismatch redirects to catalog", &Snapshot{UserID: "u2", Role: "Cliente"}, RoleAdmin, Decision{Redirect: RouteCatalog}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.snap, tc.required))
		})
	}
}

func TestSameRole(t *testing.T) {
	assert.True(t, SameRole("Administrador", "administrador"))
	assert.True(t, SameRole(" ADMINISTRADOR ", "administrador"))
	assert.False(t, SameRole("cliente", "administrador"))
	assert.True(t, SameRole("", ""))
}
