package handlers_fiber

import (
	"net/http"

	"chore-app/internal/mapper"
	"chore-app/internal/transport/http/dto"
	"chore-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostToggleSubtask flips one sub-task of an assignment.
func (h *Handler) PostToggleSubtask(c *fiber.Ctx) error {
	var body dto.ToggleSubtaskJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	a, err := h.uc.ToggleSubtask(c.Context(), middleware.SessionFrom(c), c.Params("id"), body.Label)
	if err != nil {
		h.log.Errorw("failed to toggle subtask", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"assignment": mapper.ToDTOAssignment(*a)})
}

// PostCompleteAll completes every sub-task of an assignment.
func (h *Handler) PostCompleteAll(c *fiber.Ctx) error {
	a, err := h.uc.CompleteAll(c.Context(), middleware.SessionFrom(c), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to complete assignment", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"assignment": mapper.ToDTOAssignment(*a)})
}

// PostResetAll clears every sub-task of an assignment.
func (h *Handler) PostResetAll(c *fiber.Ctx) error {
	a, err := h.uc.ResetAll(c.Context(), middleware.SessionFrom(c), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to reset assignment", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"assignment": mapper.ToDTOAssignment(*a)})
}
