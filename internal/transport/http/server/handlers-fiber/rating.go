package handlers_fiber

import (
	"net/http"

	"chore-app/internal/mapper"
	"chore-app/internal/transport/http/dto"
	"chore-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetQualityCheck returns the previous cycle's assignments open for rating.
func (h *Handler) GetQualityCheck(c *fiber.Ctx) error {
	qc, err := h.uc.QualityCheck(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.log.Errorw("failed to load quality check", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOQualityCheck(qc))
}

// PostRatings stores or overwrites the acting member's score for an assignment.
func (h *Handler) PostRatings(c *fiber.Ctx) error {
	var body dto.SubmitRatingJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}
	if body.AssignmentId == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "assignment_id is required"))
	}

	r, err := h.uc.SubmitRating(c.Context(), middleware.SessionFrom(c), body.AssignmentId, body.Rating)
	if err != nil {
		h.log.Errorw("failed to submit rating", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"rating": mapper.ToDTORating(*r)})
}
