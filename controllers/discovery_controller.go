package controller

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"truleadai/config"
	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type DiscoveryController struct {
	Store     store.Store
	Logger    *log.Logger
	Generator *utils.Generator
}

func NewDiscoveryController(kv store.Store, logger *log.Logger) *DiscoveryController {
	return &DiscoveryController{
		Store:     kv,
		Logger:    logger,
		Generator: utils.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// DiscoverLeads runs one discovery: roll the quota over if the day changed,
// size the batch to what the allowance still permits, generate, reserve and
// persist. The quota debit is written before the leads are appended, so a
// crash in between under-delivers instead of over-spending.
func (dc *DiscoveryController) DiscoverLeads(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	// Filters are optional; a body-less request discovers unconstrained.
	var input struct {
		Filters models.FilterCriteria `json:"filters"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
	}

	current, changed := utils.CheckAndRollover(*user, time.Now())
	if changed {
		if err := store.SaveUser(dc.Store, &current); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to persist quota reset", err)
		}
	}

	remaining := current.Remaining()
	if remaining == 0 {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests,
			"Daily discovery quota exhausted, try again tomorrow", utils.ErrQuotaExceeded)
	}

	size := config.AppConfig.DiscoveryBatchSize
	if remaining < size {
		size = remaining
	}

	batch := dc.Generator.GenerateBatch(size, input.Filters)

	current, err := utils.Reserve(current, len(batch))
	if err != nil {
		if errors.Is(err, utils.ErrQuotaExceeded) {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests,
				"Daily discovery quota exhausted, try again tomorrow", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reserve quota", err)
	}
	if err := store.SaveUser(dc.Store, &current); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to persist quota", err)
	}

	leads, err := store.LoadLeads(dc.Store, current.ID)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load leads", err)
		}
		// Corrupt collection: continue against an empty one but make noise,
		// the user's history is gone either way.
		dc.Logger.Printf("WARNING: discarding corrupt lead collection for %s: %v", current.ID, err)
		utils.LogEvent("corrupt_leads_discarded", map[string]interface{}{
			"user_id": current.ID,
			"error":   err.Error(),
		})
	}

	leads = append(leads, batch...)
	if err := store.SaveLeads(dc.Store, current.ID, leads); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save leads", err)
	}

	dc.recordActivity(current.ID, models.ActivityLeadDiscovered,
		fmt.Sprintf("Discovered %d new leads", len(batch)))

	dc.Logger.Printf("User %s discovered %d leads (%d/%d quota used)",
		current.ID, len(batch), current.UsedQuota, current.DailyQuota)

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"leads": batch,
		"quota": fiber.Map{
			"dailyQuota": current.DailyQuota,
			"usedQuota":  current.UsedQuota,
			"remaining":  current.Remaining(),
			"lastReset":  current.LastReset,
		},
	}))
}

func (dc *DiscoveryController) recordActivity(userID, activityType, description string) {
	if err := appendActivity(dc.Store, userID, activityType, description); err != nil {
		dc.Logger.Printf("Failed to record activity for %s: %v", userID, err)
	}
}
