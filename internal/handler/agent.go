package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type agentRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"max=255"`
}

func (h *Handler) listAgents(c *fiber.Ctx) error {
	agents, err := h.agentService.List()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"data": agents})
}

func (h *Handler) getAgent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	agent, err := h.agentService.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(agent)
}

func (h *Handler) createAgent(c *fiber.Ctx) error {
	var req agentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	agent, err := h.agentService.Create(req.Name, req.Location)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(agent)
}

func (h *Handler) updateAgent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req agentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	agent, err := h.agentService.Update(id, req.Name, req.Location)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(agent)
}

func (h *Handler) deleteAgent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.agentService.Delete(id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted_id": id})
}

// agentCalendar returns the agent's records expanded into calendar events
// merged with public holidays, as a plain JSON array.
func (h *Handler) agentCalendar(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	events, err := h.agentService.Calendar(id, time.Now())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(events)
}

func (h *Handler) agentAvailability(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	status, err := h.agentService.Availability(id, time.Now())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(status)
}
