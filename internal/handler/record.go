package handler

import (
	"github.com/hidr4lisk/experimento/internal/repository"
	"github.com/hidr4lisk/experimento/internal/service"

	"github.com/gofiber/fiber/v2"
)

type recordRequest struct {
	AgentID   uint   `json:"agent_id" validate:"required"`
	Category  string `json:"category" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Notes     string `json:"notes"`
}

func (r recordRequest) toInput() service.RecordInput {
	return service.RecordInput{
		AgentID:   r.AgentID,
		Category:  r.Category,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Notes:     r.Notes,
	}
}

// listRecords filters by agent_id, category and free-text search (q) from
// query parameters; all are optional.
func (h *Handler) listRecords(c *fiber.Ctx) error {
	filter := repository.RecordFilter{
		AgentID:  uint(c.QueryInt("agent_id")),
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	records, err := h.recordService.List(filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"data": records})
}

func (h *Handler) getRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	record, err := h.recordService.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(record)
}

func (h *Handler) createRecord(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	record, err := h.recordService.Create(req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *Handler) updateRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	record, err := h.recordService.Update(id, req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(record)
}

func (h *Handler) deleteRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.recordService.Delete(id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted_id": id})
}
