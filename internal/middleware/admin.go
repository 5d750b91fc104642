package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/config"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
)

// AdminMiddleware guards the admin routes with the static key from config.
// The office runs on a handful of trusted volunteers; there are no per-user
// accounts in this service.
type AdminMiddleware struct {
	apiKey string
}

func NewAdminMiddleware(cfg *config.Config) *AdminMiddleware {
	return &AdminMiddleware{apiKey: cfg.Admin.APIKey}
}

// Required rejects requests without the right X-Admin-Key header. When no key
// is configured the admin surface is closed, not open.
func (m *AdminMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.apiKey == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse(
				"ADMIN_DISABLED", "Admin API is not configured",
			))
		}
		key := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse(
				"UNAUTHORIZED", "Invalid admin key",
			))
		}
		return c.Next()
	}
}
