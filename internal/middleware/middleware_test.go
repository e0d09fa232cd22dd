package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"ziffy_backend/internal/token"
	"ziffy_backend/model"
)

func newAuthedApp(t *testing.T, extra ...fiber.Handler) (*fiber.App, *token.Service) {
	t.Helper()
	tokens := token.NewService("test-secret", time.Hour)

	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(tokens)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		email, err := EmailFromLocals(c)
		if err != nil {
			return err
		}
		return c.SendString(email)
	})
	app.Get("/protected", handlers...)
	return app, tokens
}

func request(t *testing.T, app *fiber.App, target, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRequireAuthMissingCookie(t *testing.T) {
	app, _ := newAuthedApp(t)
	resp := request(t, app, "/protected", "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	app, _ := newAuthedApp(t)
	resp := request(t, app, "/protected", "garbage")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	app, tokens := newAuthedApp(t)
	tok, err := tokens.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	resp := request(t, app, "/protected", tok)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireSelf(t *testing.T) {
	app, tokens := newAuthedApp(t, RequireSelf())
	tok, err := tokens.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"matching email", "/protected?email=alice@example.com", fiber.StatusOK},
		{"other email", "/protected?email=bob@example.com", fiber.StatusForbidden},
		{"missing email", "/protected", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(t, app, tc.target, tok)
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	roles := map[string]string{
		"root@example.com":  model.RoleAdmin,
		"alice@example.com": model.RoleUser,
	}
	lookup := func(_ context.Context, email string) (string, error) {
		role, ok := roles[email]
		if !ok {
			return "", errors.New("not found")
		}
		return role, nil
	}

	app, tokens := newAuthedApp(t, RequireAdmin(lookup))

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin", "root@example.com", fiber.StatusOK},
		{"plain user", "alice@example.com", fiber.StatusForbidden},
		{"unknown user", "ghost@example.com", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := tokens.Issue(tc.email)
			if err != nil {
				t.Fatalf("issue: %v", err)
			}
			resp := request(t, app, "/protected", tok)
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestRequireSelfWithoutIdentityIsRejected(t *testing.T) {
	// Ownership stage mounted without the identity stage must refuse the
	// request outright rather than compare against nothing.
	app := fiber.New()
	app.Get("/broken", RequireSelf(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	resp := request(t, app, "/broken?email=alice@example.com", "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
