package handler

import (
	"github.com/hidr4lisk/experimento/internal/models"

	"github.com/gofiber/fiber/v2"
)

// debugDB is an admin-only diagnostics view: row counts per table and the
// SQLite engine version.
func (h *Handler) debugDB(c *fiber.Ctx) error {
	counts := fiber.Map{}
	tables := map[string]interface{}{
		"agents":  &models.Agent{},
		"records": &models.Record{},
		"users":   &models.User{},
	}
	for name, model := range tables {
		var count int64
		if err := h.db.Model(model).Count(&count).Error; err != nil {
			return h.fail(c, err)
		}
		counts[name] = count
	}

	var version string
	if err := h.db.Raw("SELECT sqlite_version()").Scan(&version).Error; err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"sqlite_version": version,
		"tables":         counts,
	})
}
