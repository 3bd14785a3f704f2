package middleware

import (
	"crypto/subtle"
	"net/http"

	"chore-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"go.uber.org/zap"
)

// BearerAuth rejects requests whose Authorization header does not carry
// "Bearer <secret>". Rejections never reach the wrapped handler.
func BearerAuth(secret string, log *zap.SugaredLogger) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Warnw("trigger rejected", "path", c.Path(), "ip", c.IP(), "error", err)
			return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.ErrorBody{
				Code:    dto.UNAUTHORIZED,
				Message: "Unauthorized",
			}})
		},
	})
}
