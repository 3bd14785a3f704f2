// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"chore-app/internal/transport/http/middleware"
	"chore-app/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the chore API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts the API routes. Trigger routes are guarded by the bearer
// secret; member routes read the acting member from the session header.
func (h *Handler) Register(router fiber.Router, cronSecret string) {
	api := router.Group("/api")

	guard := middleware.BearerAuth(cronSecret, h.log)
	api.Post("/rotate-chores", guard, h.PostRotateChores)
	api.Post("/mark-late", guard, h.PostMarkLate)

	api.Use(middleware.Session())
	api.Get("/members", h.GetMembers)
	api.Get("/chores", h.GetChores)
	api.Get("/calendar", h.GetCalendar)
	api.Get("/assignments", h.GetAssignments)
	api.Post("/assignments/:id/subtasks/toggle", h.PostToggleSubtask)
	api.Post("/assignments/:id/complete", h.PostCompleteAll)
	api.Post("/assignments/:id/reset", h.PostResetAll)
	api.Get("/quality-check", h.GetQualityCheck)
	api.Post("/ratings", h.PostRatings)
	api.Get("/stats/members/:id", h.GetMemberStats)
}
