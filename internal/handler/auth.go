package handler

import (
	"time"

	"github.com/hidr4lisk/experimento/internal/service"

	"github.com/gofiber/fiber/v2"
)

const sessionCookie = "session"

// claimsKey is the locals slot holding the parsed session, nil when anonymous.
const claimsKey = "claims"

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// session parses the session cookie when present. It never rejects: anonymous
// requests continue with nil claims and the route guards decide.
func (h *Handler) session(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookie)
	if token != "" {
		if claims, err := h.authService.ParseToken(token); err == nil {
			c.Locals(claimsKey, claims)
		}
	}
	return c.Next()
}

func sessionClaims(c *fiber.Ctx) *service.SessionClaims {
	claims, _ := c.Locals(claimsKey).(*service.SessionClaims)
	return claims
}

func (h *Handler) requireAuth(c *fiber.Ctx) error {
	if sessionClaims(c) == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	return c.Next()
}

func (h *Handler) requireAdmin(c *fiber.Ctx) error {
	claims := sessionClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	if !claims.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin role required"})
	}
	return c.Next()
}

func (h *Handler) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return h.fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.authService.SessionTTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"username": user.Username,
		"role":     user.Role,
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

// me reports the current identity: {is_authenticated, is_admin}.
func (h *Handler) me(c *fiber.Ctx) error {
	claims := sessionClaims(c)
	if claims == nil {
		return c.JSON(fiber.Map{
			"is_authenticated": false,
			"is_admin":         false,
		})
	}
	return c.JSON(fiber.Map{
		"is_authenticated": true,
		"is_admin":         claims.IsAdmin(),
		"username":         claims.Username,
	})
}
