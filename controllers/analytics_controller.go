package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type AnalyticsController struct {
	Store  store.Store
	Logger *log.Logger
}

func NewAnalyticsController(kv store.Store, logger *log.Logger) *AnalyticsController {
	return &AnalyticsController{
		Store:  kv,
		Logger: logger,
	}
}

// GetAnalytics aggregates the dashboard summary over the current collection.
// Callers may supply their own weekly activity series; without one the
// simulated default is used. The engine derives rates from whatever series
// it is handed, it does not track outreach itself.
func (anc *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		WeeklyActivity []models.WeeklyActivity `json:"weekly_activity" validate:"omitempty,len=7,dive"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := utils.ValidateStruct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
	}

	weekly := input.WeeklyActivity
	if len(weekly) == 0 {
		weekly = models.DefaultWeeklyActivity()
	}

	leads, err := store.LoadLeads(anc.Store, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load leads", err)
	}

	summary := utils.Aggregate(leads, weekly)
	return c.JSON(utils.SuccessResponse(summary))
}
