package middleware

import (
	"strings"

	"chore-app/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// HeaderMemberID carries the acting member chosen by the client.
const HeaderMemberID = "X-Member-ID"

const sessionKey = "session"

// Session attaches the caller-supplied member identity to the request.
// The identity is trusted as given.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionKey, entities.Session{MemberID: strings.TrimSpace(c.Get(HeaderMemberID))})
		return c.Next()
	}
}

// SessionFrom returns the session stored by Session, or an anonymous one.
func SessionFrom(c *fiber.Ctx) entities.Session {
	s, _ := c.Locals(sessionKey).(entities.Session)
	return s
}
