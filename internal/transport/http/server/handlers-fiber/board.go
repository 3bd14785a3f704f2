package handlers_fiber

import (
	"net/http"

	"chore-app/internal/mapper"
	"chore-app/internal/transport/http/dto"
	"chore-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetMembers returns the roster in rotation order.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	members, err := h.uc.ListMembers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list members", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"members": mapper.ToDTOMemberList(members)})
}

// GetChores returns the chore catalog.
func (h *Handler) GetChores(c *fiber.Ctx) error {
	chores, err := h.uc.ListChores(c.Context())
	if err != nil {
		h.log.Errorw("failed to list chores", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"chores": mapper.ToDTOChoreList(chores)})
}

// GetCalendar returns the calendar facts of the current instant.
func (h *Handler) GetCalendar(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToDTOCycleInfo(h.uc.Calendar()))
}

// GetAssignments returns the current cycle board; scope=mine narrows it to
// the acting member.
func (h *Handler) GetAssignments(c *fiber.Ctx) error {
	var mine bool
	switch scope := c.Query("scope", "current"); scope {
	case "current":
	case "mine":
		mine = true
	default:
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "scope must be current or mine"))
	}

	board, err := h.uc.CycleBoard(c.Context(), middleware.SessionFrom(c), mine)
	if err != nil {
		h.log.Errorw("failed to build cycle board", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOCycleBoard(board))
}

// GetMemberStats returns the history counters of a member.
func (h *Handler) GetMemberStats(c *fiber.Ctx) error {
	stats, err := h.uc.MemberStats(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get member stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}
