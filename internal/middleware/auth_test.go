package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

type stubUserStore struct {
	user *models.User
}

func (s *stubUserStore) Create(*models.User) error { return nil }

func (s *stubUserStore) GetByID(id string) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, store.ErrNotFound
}

func (s *stubUserStore) GetByEmail(email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, store.ErrNotFound
}

func guardApp(issuer *token.Issuer, users store.UserStore) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Protected(issuer, users), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": UserFromCtx(c).ID})
	})
	return app
}

func errorMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload["error"]
}

func TestProtected_MissingOrMalformedHeader(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	app := guardApp(issuer, &stubUserStore{})

	for _, header := range []string{"", "bearer abc", "Token abc", "Bearer "} {
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Missing bearer token", errorMessage(t, resp.Body))
	}
}

func TestProtected_InvalidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	app := guardApp(issuer, &stubUserStore{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, resp.Body))
}

func TestProtected_ExpiredToken(t *testing.T) {
	expired := token.NewIssuer("secret", -1*time.Minute)
	user := &models.User{ID: "u1", Email: "al@x.com"}

	tok, err := expired.Issue(user)
	require.NoError(t, err)

	app := guardApp(token.NewIssuer("secret", time.Hour), &stubUserStore{user: user})
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, resp.Body))
}

func TestProtected_UnknownSubject(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	tok, err := issuer.Issue(&models.User{ID: "gone", Email: "gone@x.com"})
	require.NoError(t, err)

	app := guardApp(issuer, &stubUserStore{})
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", errorMessage(t, resp.Body))
}

func TestProtected_Success(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	user := &models.User{ID: "u1", Email: "al@x.com"}

	tok, err := issuer.Issue(user)
	require.NoError(t, err)

	app := guardApp(issuer, &stubUserStore{user: user})
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer  "+tok+"  ")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "u1", payload["id"])
}
