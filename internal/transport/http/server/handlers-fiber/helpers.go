package handlers_fiber

import (
	"errors"
	"net/http"

	"chore-app/internal/entities"
	"chore-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
	case errors.Is(err, entities.ErrMemberNotFound), errors.Is(err, entities.ErrChoreNotFound), errors.Is(err, entities.ErrAssignmentNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrCycleAlreadyRotated):
		status = http.StatusConflict
		code = dto.ALREADYROTATED
		msg = "next cycle already holds assignments for these chores"
	case errors.Is(err, entities.ErrEmptyRoster):
		status = http.StatusUnprocessableEntity
		code = dto.EMPTYROSTER
	case errors.Is(err, entities.ErrEmptyCatalog):
		status = http.StatusUnprocessableEntity
		code = dto.EMPTYCATALOG
	case errors.Is(err, entities.ErrUnknownSubtask):
		status = http.StatusUnprocessableEntity
		code = dto.UNKNOWNSUBTASK
	case errors.Is(err, entities.ErrSelfRating):
		status = http.StatusUnprocessableEntity
		code = dto.SELFRATING
		msg = "you cannot rate your own chore"
	case errors.Is(err, entities.ErrNotQualityCheckDay):
		status = http.StatusUnprocessableEntity
		code = dto.NOTCHECKDAY
	case errors.Is(err, entities.ErrInvalidScore):
		status = http.StatusUnprocessableEntity
		code = dto.INVALIDSCORE
	case errors.Is(err, entities.ErrRatingClosed):
		status = http.StatusUnprocessableEntity
		code = dto.RATINGCLOSED
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorResponseErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
