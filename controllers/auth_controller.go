package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"truleadai/models"
	"truleadai/store"
	"truleadai/utils"
)

type AuthController struct {
	Store  store.Store
	Logger *log.Logger
}

func NewAuthController(kv store.Store, logger *log.Logger) *AuthController {
	return &AuthController{
		Store:  kv,
		Logger: logger,
	}
}

// Demo accounts. There is no password check on this platform; login picks
// one of two fixed personas by role.
var demoUsers = map[string]models.User{
	"user": {
		ID:    "user-1",
		Name:  "Sales Rep",
		Email: "sales@company.com",
		Role:  "user",
	},
	"admin": {
		ID:    "admin-1",
		Name:  "Admin User",
		Email: "admin@truleadai.com",
		Role:  "admin",
	},
}

// Login creates or restores the demo session user for the requested role.
// An existing account keeps its quota state; a fresh one starts with the
// full daily allowance reset to today.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Role string `json:"role" validate:"required,oneof=user admin"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	demo := demoUsers[input.Role]

	user, err := store.LoadUser(ac.Store, demo.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load user", err)
	}
	if user == nil {
		demo.DailyQuota = models.DefaultDailyQuota
		demo.UsedQuota = 0
		demo.LastReset = time.Now().Format(models.QuotaDateLayout)
		user = &demo

		if err := store.SaveUser(ac.Store, user); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save user", err)
		}
		ac.Logger.Printf("Created demo account %s (%s)", user.ID, user.Role)
	}

	return c.JSON(utils.SuccessResponse(user))
}

// GetCurrentUser returns the session user with quota rollover applied, so
// the dashboard always sees today's remaining allowance.
func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	rolled, changed := utils.CheckAndRollover(*user, time.Now())
	if changed {
		if err := store.SaveUser(ac.Store, &rolled); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to persist quota reset", err)
		}
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"user":      rolled,
		"remaining": rolled.Remaining(),
	}))
}
