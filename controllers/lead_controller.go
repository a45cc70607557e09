package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type LeadController struct {
	Store  store.Store
	Logger *log.Logger
}

func NewLeadController(kv store.Store, logger *log.Logger) *LeadController {
	return &LeadController{
		Store:  kv,
		Logger: logger,
	}
}

// GetLeads returns the user's collection through the view pipeline (search,
// status and industry filters, then sort) together with the counts the
// dashboard tabs need. Counts always reflect the unfiltered collection.
func (lc *LeadController) GetLeads(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	criteria := models.ViewCriteria{
		Search:    c.Query("search"),
		Status:    c.Query("status", models.FilterAll),
		Industry:  c.Query("industry", models.FilterAll),
		SortBy:    c.Query("sort_by", models.SortByRelevance),
		SortOrder: c.Query("sort_order", models.SortDesc),
	}

	leads, err := store.LoadLeads(lc.Store, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load leads", err)
	}

	view := utils.ApplyView(leads, criteria)

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"leads":        view,
		"total":        len(leads),
		"shown":        len(view),
		"statusCounts": utils.StatusCounts(leads),
		"industries":   utils.DistinctIndustries(leads),
	}))
}

// GetLead returns a single lead by id.
func (lc *LeadController) GetLead(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	leadID := c.Params("id")

	leads, err := store.LoadLeads(lc.Store, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load leads", err)
	}

	for _, lead := range leads {
		if lead.ID == leadID {
			return c.JSON(utils.SuccessResponse(lead))
		}
	}
	return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", utils.ErrLeadNotFound)
}

// UpdateLeadStatus moves a lead to a new pipeline status and writes the
// collection through. Any status can move to any other.
func (lc *LeadController) UpdateLeadStatus(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	leadID := c.Params("id")

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	status := models.LeadStatus(input.Status)
	if !models.ValidStatus(status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Unknown status %q", input.Status), nil)
	}

	updated, err := lc.mutateLeads(user.ID, func(leads []models.Lead) ([]models.Lead, error) {
		return utils.SetStatus(leads, leadID, status)
	})
	if err != nil {
		return lc.mutationError(c, err)
	}

	lc.recordActivity(user.ID, models.ActivityStatusUpdated,
		fmt.Sprintf("Lead status changed to %s", status))

	return c.JSON(utils.SuccessResponse(findLead(updated, leadID)))
}

// UpdateLeadNotes replaces the lead's notes wholesale.
func (lc *LeadController) UpdateLeadNotes(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	leadID := c.Params("id")

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updated, err := lc.mutateLeads(user.ID, func(leads []models.Lead) ([]models.Lead, error) {
		return utils.SetNotes(leads, leadID, input.Notes)
	})
	if err != nil {
		return lc.mutationError(c, err)
	}

	lc.recordActivity(user.ID, models.ActivityNoteAdded, "Note saved on a lead")

	return c.JSON(utils.SuccessResponse(findLead(updated, leadID)))
}

// mutateLeads loads the collection, applies the mutation and writes the
// result back. The collection is the unit of durability here.
func (lc *LeadController) mutateLeads(userID string, mutate func([]models.Lead) ([]models.Lead, error)) ([]models.Lead, error) {
	leads, err := store.LoadLeads(lc.Store, userID)
	if err != nil {
		return nil, err
	}

	updated, err := mutate(leads)
	if err != nil {
		return nil, err
	}

	if err := store.SaveLeads(lc.Store, userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (lc *LeadController) mutationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, utils.ErrLeadNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", err)
	}
	if errors.Is(err, store.ErrCorrupt) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Stored lead collection is corrupt", err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update lead", err)
}

func (lc *LeadController) recordActivity(userID, activityType, description string) {
	if err := appendActivity(lc.Store, userID, activityType, description); err != nil {
		lc.Logger.Printf("Failed to record activity for %s: %v", userID, err)
	}
}

func findLead(leads []models.Lead, id string) *models.Lead {
	for i := range leads {
		if leads[i].ID == id {
			return &leads[i]
		}
	}
	return nil
}
