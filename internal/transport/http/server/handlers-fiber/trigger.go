package handlers_fiber

import (
	"net/http"

	"chore-app/internal/calendar"
	"chore-app/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostRotateChores advances every chore to the next member for the next cycle.
func (h *Handler) PostRotateChores(c *fiber.Ctx) error {
	res, err := h.uc.RotateChores(c.Context())
	if err != nil {
		h.log.Errorw("failed to rotate chores", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORotate(res))
}

// PostMarkLate flags the incomplete assignments of a cycle, the current one
// unless ?week_start_date= names another.
func (h *Handler) PostMarkLate(c *fiber.Ctx) error {
	cycle, n, err := h.uc.MarkLate(c.Context(), calendar.CycleKey(c.Query("week_start_date")))
	if err != nil {
		h.log.Errorw("failed to mark late chores", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMarkLate(cycle, n))
}
