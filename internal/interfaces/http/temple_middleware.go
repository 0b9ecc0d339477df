package http

import "github.com/gofiber/fiber/v2"

const defaultTempleID = "main"

// TempleMiddleware resolves the temple identifier for the request from the
// X-Temple-ID header. Single-temple deployments omit the header and get the
// default. This is scoping, not authentication (auth is out of scope here).
func TempleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		templeID := c.Get("X-Temple-ID")
		if templeID == "" {
			templeID = defaultTempleID
		}
		c.Locals("templeID", templeID)
		return c.Next()
	}
}

// GetTempleID returns the temple identifier resolved for the request.
func GetTempleID(c *fiber.Ctx) string {
	if v, ok := c.Locals("templeID").(string); ok {
		return v
	}
	return defaultTempleID
}
