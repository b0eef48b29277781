package middleware

import (
	"errors"
	"time"

	"github.com/courtlab/backend/internal/models"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const currentProfileKey = "currentProfile"

// SessionCookieName is the HTTP-only cookie carrying the signed session token.
const SessionCookieName = "session_token"

type AuthMiddleware struct {
	Profiles *services.ProfileService
}

func NewAuthMiddleware(profiles *services.ProfileService) *AuthMiddleware {
	return &AuthMiddleware{Profiles: profiles}
}

func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5100,http://127.0.0.1:5100",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	})
}

// RequireAuth resolves the session cookie into a profile. Protected routes are
// an API surface consumed by client-side code, so anonymous callers get a 401
// rather than a redirect. A cookie pointing at a vanished profile is stale and
// gets cleared.
func (a *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	profile, ok := a.resolveSession(c)
	if !ok {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	c.Locals(currentProfileKey, profile)
	c.Locals("profileID", utils.FormatID(profile.ID))
	return c.Next()
}

// OptionalAuth resolves the session if present but never rejects the request.
func (a *AuthMiddleware) OptionalAuth(c *fiber.Ctx) error {
	if profile, ok := a.resolveSession(c); ok {
		c.Locals(currentProfileKey, profile)
		c.Locals("profileID", utils.FormatID(profile.ID))
	}
	return c.Next()
}

func (a *AuthMiddleware) resolveSession(c *fiber.Ctx) (*models.UserProfile, bool) {
	tokenString := c.Cookies(SessionCookieName)
	if tokenString == "" {
		return nil, false
	}

	claims, err := utils.ValidateSessionToken(tokenString)
	if err != nil {
		logger.Warn("session_token_invalid", map[string]interface{}{
			"ip":   c.IP(),
			"path": c.Path(),
		})
		ClearSessionCookie(c)
		return nil, false
	}

	profile, err := a.Profiles.GetByID(claims.ProfileID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			logger.Warn("session_profile_missing", map[string]interface{}{
				"ip":         c.IP(),
				"path":       c.Path(),
				"profile_id": claims.ProfileID,
			})
			ClearSessionCookie(c)
		}
		return nil, false
	}

	return profile, true
}

func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(utils.SessionDuration()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func GetCurrentProfile(c *fiber.Ctx) *models.UserProfile {
	value := c.Locals(currentProfileKey)
	if value == nil {
		return nil
	}
	profile, ok := value.(*models.UserProfile)
	if !ok {
		return nil
	}
	return profile
}
