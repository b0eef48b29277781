package handlers

import (
	"github.com/courtlab/backend/internal/content"
	"github.com/courtlab/backend/internal/pages"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type PagesHandler struct {
	Content  *content.Provider
	Renderer *pages.Renderer
}

func NewPagesHandler(provider *content.Provider, renderer *pages.Renderer) *PagesHandler {
	return &PagesHandler{Content: provider, Renderer: renderer}
}

func (h *PagesHandler) Index(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "index.html", pages.PageData{})
}

func (h *PagesHandler) Shooting(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "shooting.html", pages.PageData{Drills: h.Content.Shooting()})
}

func (h *PagesHandler) BallHandling(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "ball-handling.html", pages.PageData{Drills: h.Content.BallHandling()})
}

func (h *PagesHandler) Defense(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "defense.html", pages.PageData{})
}

func (h *PagesHandler) Fitness(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "fitness.html", pages.PageData{})
}

func (h *PagesHandler) About(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "about.html", pages.PageData{})
}

func (h *PagesHandler) Resources(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "resources.html", pages.PageData{})
}

func (h *PagesHandler) Library(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "library.html", pages.PageData{ActivePage: "library"})
}

func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "login.html", pages.PageData{ActivePage: "login"})
}

func (h *PagesHandler) Profile(c *fiber.Ctx) error {
	return h.Renderer.Render(c, "profile.html", pages.PageData{ActivePage: "profile"})
}

func (h *PagesHandler) SearchShootingDrills(c *fiber.Ctx) error {
	return h.searchDrills(c, content.CategoryShooting)
}

func (h *PagesHandler) SearchBallHandlingDrills(c *fiber.Ctx) error {
	return h.searchDrills(c, content.CategoryBallHandling)
}

func (h *PagesHandler) searchDrills(c *fiber.Ctx, category content.Category) error {
	var filter content.SearchFilter
	if err := c.BodyParser(&filter); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	return c.Status(fiber.StatusOK).JSON(h.Content.Search(category, filter))
}
