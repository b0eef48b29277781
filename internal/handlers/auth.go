package handlers

import (
	"errors"

	"github.com/courtlab/backend/internal/middleware"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Profiles  *services.ProfileService
	Favorites *services.FavoritesService
}

func NewAuthHandler(profiles *services.ProfileService, favorites *services.FavoritesService) *AuthHandler {
	return &AuthHandler{Profiles: profiles, Favorites: favorites}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var payload services.ProfilePayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.Profiles.Create(payload)
	if err != nil {
		return mapServiceError(c, "signup_failed", err)
	}

	token, err := utils.GenerateSessionToken(profile.ID)
	if err != nil {
		return mapServiceError(c, "signup_session_failed", err)
	}
	middleware.SetSessionCookie(c, token)

	logger.InfoWithProfile(utils.FormatID(profile.ID), "profile_created", map[string]interface{}{
		"email": profile.Email,
	})

	return utils.Account(c, fiber.StatusCreated, profile, []string{})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "email and password are required")
	}

	profile, err := h.Profiles.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.Warn("login_rejected", map[string]interface{}{
				"ip": c.IP(),
			})
			return utils.Error(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return mapServiceError(c, "login_failed", err)
	}

	favorites, err := h.Favorites.List(profile.ID)
	if err != nil {
		return mapServiceError(c, "login_favorites_failed", err)
	}

	token, err := utils.GenerateSessionToken(profile.ID)
	if err != nil {
		return mapServiceError(c, "login_session_failed", err)
	}
	middleware.SetSessionCookie(c, token)

	logger.InfoWithProfile(utils.FormatID(profile.ID), "profile_login", map[string]interface{}{
		"ip": c.IP(),
	})

	return utils.Account(c, fiber.StatusOK, profile, favorites)
}

// Logout clears the session cookie. Idempotent: succeeds with no active
// session too.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// Session reports the current identity. An anonymous caller is not an error,
// it just gets authenticated=false.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": false})
	}

	favorites, err := h.Favorites.List(profile.ID)
	if err != nil {
		return mapServiceError(c, "session_favorites_failed", err)
	}

	return utils.Account(c, fiber.StatusOK, profile, favorites)
}
