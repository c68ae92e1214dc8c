package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/auth"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/session"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	apphttp "github.com/SalcedoCAMP/ProyectoClinica/internal/interfaces/http"
	pkgjwt "github.com/SalcedoCAMP/ProyectoClinica/pkg/jwt"
)

// fakeUserDirectory directorio de usuarios en memoria para los tests de auth.
type fakeUserDirectory struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserDirectory) Create(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *fakeUserDirectory) Update(u *entity.User) error { return nil }

func (r *fakeUserDirectory) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserDirectory) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type authFixture struct {
	app   *fiber.App
	carts *cart.Manager
	state *session.State
}

// newAuthFixture monta login y logout con dos usuarios registrados
// (ana@clinica.com y benito@clinica.com, password "secreto123").
func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &fakeUserDirectory{byEmail: map[string]*entity.User{
		"ana@clinica.com": {
			ID: "user-a", Name: "Ana", Email: "ana@clinica.com",
			PasswordHash: string(hash), DNI: "11111111", Role: entity.RoleUser,
		},
		"benito@clinica.com": {
			ID: "user-b", Name: "Benito", Email: "benito@clinica.com",
			PasswordHash: string(hash), DNI: "22222222", Role: entity.RoleUser,
		},
	}}

	uc := auth.NewUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	carts := cart.NewManager()
	state := session.NewState()
	handler := apphttp.NewAuthHandler(uc, state, carts)

	app := fiber.New()
	app.Post("/login", handler.Login)
	app.Post("/logout", apphttp.AuthMiddleware(testJWTSecret), handler.Logout)

	return &authFixture{app: app, carts: carts, state: state}
}

func (f *authFixture) login(t *testing.T, email string) {
	t.Helper()
	body := `{"email":"` + email + `","password":"secreto123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (f *authFixture) logout(t *testing.T, userID, name string) {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, name, entity.RoleUser, testIssuer, testExpMin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func paracetamolAuthTest() *entity.PharmacyProduct {
	return &entity.PharmacyProduct{
		ID:    "prod-1",
		Name:  "Paracetamol 500mg",
		Price: decimal.RequireFromString("5.50"),
		Stock: 100,
	}
}

func TestLogin_DeOtroUsuarioNoTocaCarritoAjeno(t *testing.T) {
	f := newAuthFixture(t)

	f.login(t, "ana@clinica.com")
	f.carts.Get("user-a").Add(paracetamolAuthTest(), 2)

	f.login(t, "benito@clinica.com")

	items := f.carts.Get("user-a").Items()
	require.Len(t, items, 1,
		"el login de otro usuario no debe vaciar el carrito de Ana")
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, f.carts.Get("user-b").IsEmpty())
}

func TestLogout_DescartaSoloElCarritoDelUsuarioSaliente(t *testing.T) {
	f := newAuthFixture(t)

	f.carts.Get("user-a").Add(paracetamolAuthTest(), 2)
	f.carts.Get("user-b").Add(paracetamolAuthTest(), 1)

	f.logout(t, "user-a", "Ana")

	assert.True(t, f.carts.Get("user-a").IsEmpty(),
		"el logout debe descartar el carrito del usuario que cierra sesión")
	items := f.carts.Get("user-b").Items()
	require.Len(t, items, 1, "el carrito de Benito debe quedar intacto")
	assert.Equal(t, 1, items[0].Quantity)
}

func TestLogout_NoLimpiaSesionDeOtroUsuario(t *testing.T) {
	f := newAuthFixture(t)

	f.login(t, "benito@clinica.com")
	require.NotNil(t, f.state.Current())

	f.logout(t, "user-a", "Ana")

	current := f.state.Current()
	require.NotNil(t, current, "el logout de Ana no debe cerrar la sesión de Benito")
	assert.Equal(t, "user-b", current.ID)

	f.logout(t, "user-b", "Benito")
	assert.Nil(t, f.state.Current())
}
