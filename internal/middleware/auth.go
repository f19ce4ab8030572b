package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/config"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/dto"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/services"

	jwtware "github.com/gofiber/contrib/jwt"
)

const tokenKey = "user"

// JWTProtected rejects requests without a valid bearer token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ContextKey: tokenKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// JWTOptional verifies a bearer token when one is sent and lets anonymous
// requests through.
func JWTOptional(cfg *config.Config) fiber.Handler {
	protected := JWTProtected(cfg)
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return protected(c)
	}
}

// UserID returns the subject of the verified token, if any.
func UserID(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals(tokenKey).(*jwt.Token)
	if !ok {
		return "", false
	}
	sub, err := services.SubjectOf(token)
	if err != nil {
		return "", false
	}
	return sub, true
}
