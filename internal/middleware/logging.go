package middleware

import (
	"time"

	"github.com/courtlab/backend/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		c.Locals("requestID", requestID)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		details := map[string]interface{}{
			"method":       c.Method(),
			"path":         c.Path(),
			"status_code":  statusCode,
			"latency_ms":   time.Since(start).Milliseconds(),
			"ip":           c.IP(),
			"request_body": logger.GetRequestBodySummary(c),
			"request_id":   requestID,
		}

		profileID := logger.GetProfileIDFromContext(c)
		if profileID != nil {
			if statusCode >= 500 {
				logger.ErrorWithProfile(*profileID, "http_request", err, details)
			} else {
				logger.InfoWithProfile(*profileID, "http_request", details)
			}
		} else {
			if statusCode >= 500 {
				logger.Error("http_request", err, details)
			} else {
				logger.Info("http_request", details)
			}
		}

		return err
	}
}

// SecurityLogger records rejected authentication attempts separately from the
// request log so they are easy to grep.
func SecurityLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Response().StatusCode() != fiber.StatusUnauthorized {
			return err
		}

		details := map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
			"ip":     c.IP(),
			"reason": "auth_rejected",
		}

		if profileID := logger.GetProfileIDFromContext(c); profileID != nil {
			logger.WarnWithProfile(*profileID, "auth_rejected", details)
		} else {
			logger.Warn("auth_rejected_unauthenticated", details)
		}

		return err
	}
}
