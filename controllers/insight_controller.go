package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type InsightController struct {
	Store     store.Store
	Logger    *log.Logger
	Generator utils.InsightGenerator
}

func NewInsightController(kv store.Store, logger *log.Logger, gen utils.InsightGenerator) *InsightController {
	return &InsightController{
		Store:     kv,
		Logger:    logger,
		Generator: gen,
	}
}

// GenerateInsight produces sales guidance for one lead. The generator is a
// read-only collaborator: a failure surfaces upstream but never touches the
// stored lead.
func (ic *InsightController) GenerateInsight(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	leadID := c.Params("id")

	leads, err := store.LoadLeads(ic.Store, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load leads", err)
	}

	lead := findLead(leads, leadID)
	if lead == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", utils.ErrLeadNotFound)
	}

	insight, err := ic.Generator.Generate(c.Context(), *lead)
	if err != nil {
		ic.Logger.Printf("Insight generation failed for lead %s: %v", leadID, err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Insight generation failed", err)
	}

	if err := appendActivity(ic.Store, user.ID, models.ActivityInsightGenerated,
		fmt.Sprintf("Generated insight for %s", lead.Company)); err != nil {
		ic.Logger.Printf("Failed to record activity for %s: %v", user.ID, err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"leadId":  lead.ID,
		"company": lead.Company,
		"insight": insight,
	}))
}
