package handlers

import (
	"errors"

	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// mapServiceError translates the service error taxonomy to HTTP statuses.
// Validation and conflict failures are client errors with their own message;
// anything unexpected is logged and surfaced as a generic 500.
func mapServiceError(c *fiber.Ctx, action string, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return utils.Error(c, fiber.StatusBadRequest, validationErr.Message)
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return utils.Error(c, fiber.StatusBadRequest, conflictErr.Message)
	}

	logger.Error(action, err, map[string]interface{}{
		"path": c.Path(),
	})
	return utils.Error(c, fiber.StatusInternalServerError, "something went wrong, please try again")
}
