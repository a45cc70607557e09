package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type ActivityController struct {
	Store  store.Store
	Logger *log.Logger
}

func NewActivityController(kv store.Store, logger *log.Logger) *ActivityController {
	return &ActivityController{
		Store:  kv,
		Logger: logger,
	}
}

// GetActivity returns the recent-activity feed, newest first.
func (atc *ActivityController) GetActivity(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	activities, err := store.LoadActivities(atc.Store, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load activity feed", err)
	}

	return c.JSON(utils.SuccessResponse(activities))
}

// appendActivity prepends one entry to the user's feed. The feed is
// best-effort bookkeeping: callers log append failures but never fail the
// request over them.
func appendActivity(s store.Store, userID, activityType, description string) error {
	activities, err := store.LoadActivities(s, userID)
	if err != nil {
		// A corrupt feed is replaced rather than blocking new entries.
		activities = []models.Activity{}
	}

	entry := models.Activity{
		ID:          uuid.NewString(),
		Type:        activityType,
		Description: description,
		At:          time.Now(),
	}
	activities = append([]models.Activity{entry}, activities...)

	return store.SaveActivities(s, userID, activities)
}
