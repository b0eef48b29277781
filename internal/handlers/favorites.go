package handlers

import (
	"github.com/courtlab/backend/internal/middleware"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type FavoritesHandler struct {
	Favorites *services.FavoritesService
}

func NewFavoritesHandler(favorites *services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{Favorites: favorites}
}

func (h *FavoritesHandler) Get(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	favorites, err := h.Favorites.List(profile.ID)
	if err != nil {
		return mapServiceError(c, "favorites_list_failed", err)
	}

	return utils.Favorites(c, favorites)
}

type replaceFavoritesRequest struct {
	Favorites []string `json:"favorites"`
}

func (h *FavoritesHandler) Replace(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	var req replaceFavoritesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	stored, err := h.Favorites.ReplaceAll(profile.ID, req.Favorites)
	if err != nil {
		return mapServiceError(c, "favorites_replace_failed", err)
	}

	return utils.Favorites(c, stored)
}

type toggleFavoriteRequest struct {
	DrillID string `json:"drillId"`
}

func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	profile := middleware.GetCurrentProfile(c)
	if profile == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	var req toggleFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	refreshed, err := h.Favorites.Toggle(profile.ID, req.DrillID)
	if err != nil {
		return mapServiceError(c, "favorites_toggle_failed", err)
	}

	return utils.Favorites(c, refreshed)
}
