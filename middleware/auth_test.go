package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircnc-booking/services/token"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	return app
}

func TestRequireAuthAllowsValidToken(t *testing.T) {
	tokens := token.NewService("test-secret")
	app := protectedApp(tokens)

	signed, err := tokens.Issue("guest@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "guest@example.com", body["email"])
}

func TestRequireAuthRejects(t *testing.T) {
	tokens := token.NewService("test-secret")
	app := protectedApp(tokens)

	otherToken, err := token.NewService("other-secret").Issue("guest@example.com")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":   "",
		"malformed header": "Bearer",
		"wrong scheme":     "Token abc",
		"bad signature":    "Bearer " + otherToken,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)

			var body types.AuthFailure
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.True(t, body.Error)
			assert.Equal(t, "unauthorized access", body.Message)
		})
	}
}
