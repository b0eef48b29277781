package utils

import "github.com/gofiber/fiber/v2"

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// Account renders the profile+favorites shape shared by the signup, login,
// session, profile and avatar endpoints.
func Account(c *fiber.Ctx, status int, profile interface{}, favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	return c.Status(status).JSON(fiber.Map{
		"profile":       profile,
		"favorites":     favorites,
		"authenticated": true,
	})
}

func Favorites(c *fiber.Ctx, favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"favorites": favorites,
	})
}
