package handlers

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/courtlab/backend/internal/middleware"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/internal/storage"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	Profiles  *services.ProfileService
	Favorites *services.FavoritesService
	Avatars   storage.AvatarStore
}

func NewProfileHandler(profiles *services.ProfileService, favorites *services.FavoritesService, avatars storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Favorites: favorites, Avatars: avatars}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	favorites, err := h.Favorites.List(profile.ID)
	if err != nil {
		return mapServiceError(c, "profile_favorites_failed", err)
	}

	return utils.Account(c, fiber.StatusOK, profile, favorites)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	// ProfilePayload has no avatar field, so a client-supplied avatarPath is
	// dropped here; the avatar only changes through the upload endpoint.
	var payload services.ProfilePayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.Profiles.Update(profile.ID, payload)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			middleware.ClearSessionCookie(c)
			return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
		}
		return mapServiceError(c, "profile_update_failed", err)
	}

	favorites, err := h.Favorites.List(updated.ID)
	if err != nil {
		return mapServiceError(c, "profile_favorites_failed", err)
	}

	return utils.Account(c, fiber.StatusOK, updated, favorites)
}

var allowedAvatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "avatar file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExtensions[ext] {
		return utils.Error(c, fiber.StatusBadRequest, "unsupported file type")
	}

	stream, err := fileHeader.Open()
	if err != nil {
		return mapServiceError(c, "avatar_open_failed", err)
	}
	defer stream.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filename := fmt.Sprintf("profile_%d_%s%s", profile.ID, uuid.New().String(), ext)

	previous, err := h.Profiles.GetAvatar(profile.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return mapServiceError(c, "avatar_lookup_failed", err)
	}
	if previous != "" {
		_ = h.Avatars.Delete(c.Context(), previous)
	}

	if err := h.Avatars.Save(c.Context(), filename, stream, fileHeader.Size, contentType); err != nil {
		return mapServiceError(c, "avatar_save_failed", err)
	}

	if err := h.Profiles.SetAvatar(profile.ID, filename); err != nil {
		_ = h.Avatars.Delete(c.Context(), filename)
		if errors.Is(err, services.ErrNotFound) {
			middleware.ClearSessionCookie(c)
			return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
		}
		return mapServiceError(c, "avatar_persist_failed", err)
	}

	logger.InfoWithProfile(utils.FormatID(profile.ID), "avatar_uploaded", map[string]interface{}{
		"filename": filename,
		"size":     fileHeader.Size,
	})

	return h.respondRefreshed(c, profile.ID)
}

func (h *ProfileHandler) DeleteAvatar(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	previous, err := h.Profiles.GetAvatar(profile.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			middleware.ClearSessionCookie(c)
			return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
		}
		return mapServiceError(c, "avatar_lookup_failed", err)
	}

	if previous != "" {
		_ = h.Avatars.Delete(c.Context(), previous)
	}

	if err := h.Profiles.SetAvatar(profile.ID, ""); err != nil && !errors.Is(err, services.ErrNotFound) {
		return mapServiceError(c, "avatar_clear_failed", err)
	}

	return h.respondRefreshed(c, profile.ID)
}

func (h *ProfileHandler) respondRefreshed(c *fiber.Ctx, profileID uint) error {
	refreshed, err := h.Profiles.GetByID(profileID)
	if err != nil {
		return mapServiceError(c, "profile_reload_failed", err)
	}

	favorites, err := h.Favorites.List(profileID)
	if err != nil {
		return mapServiceError(c, "profile_favorites_failed", err)
	}

	return utils.Account(c, fiber.StatusOK, refreshed, favorites)
}
