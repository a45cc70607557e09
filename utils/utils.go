package utils

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LogEvent logs a structured event.
func LogEvent(eventType string, data map[string]interface{}) {
	logrus.WithFields(logrus.Fields(data)).Info(eventType)
}

// ErrorResponse creates a standardized error response. Server-side failures
// are also reported to Sentry when it is configured.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	if status >= fiber.StatusInternalServerError {
		sentry.CaptureException(fmt.Errorf("%s: %w", message, errOrMessage(err, message)))
	}
	return c.Status(status).JSON(response)
}

func errOrMessage(err error, message string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("%s", message)
}

// SuccessResponse creates a standardized success response.
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}
