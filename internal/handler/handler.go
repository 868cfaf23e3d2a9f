package handler

import (
	"errors"

	"github.com/hidr4lisk/experimento/internal/apperr"
	"github.com/hidr4lisk/experimento/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	agentService  *service.AgentService
	recordService *service.RecordService
	authService   *service.AuthService
	db            *gorm.DB
	validate      *validator.Validate
	logger        *logrus.Logger
}

func NewHandler(
	agentService *service.AgentService,
	recordService *service.RecordService,
	authService *service.AuthService,
	db *gorm.DB,
) *Handler {
	return &Handler{
		agentService:  agentService,
		recordService: recordService,
		authService:   authService,
		db:            db,
		validate:      validator.New(),
		logger:        logrus.New(),
	}
}

// RegisterRoutes wires the API. Identity rules live here only: the services
// below never check who is calling.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api", h.session)

	api.Post("/login", h.login)
	api.Post("/logout", h.logout)
	api.Get("/me", h.me)

	agents := api.Group("/agents")
	agents.Get("/", h.listAgents)
	agents.Post("/", h.requireAuth, h.createAgent)
	agents.Get("/:id", h.getAgent)
	agents.Put("/:id", h.requireAuth, h.updateAgent)
	agents.Delete("/:id", h.requireAdmin, h.deleteAgent)
	agents.Get("/:id/calendar", h.agentCalendar)
	agents.Get("/:id/availability", h.agentAvailability)

	records := api.Group("/records")
	records.Get("/", h.listRecords)
	records.Post("/", h.requireAuth, h.createRecord)
	records.Get("/:id", h.getRecord)
	records.Put("/:id", h.requireAuth, h.updateRecord)
	records.Delete("/:id", h.requireAdmin, h.deleteRecord)

	api.Get("/debug/db", h.requireAdmin, h.debugDB)
}

// fail maps service errors onto HTTP status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrHolidayProvider):
		h.logger.WithError(err).Error("holiday provider failure")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
