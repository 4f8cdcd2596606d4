package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/corpweb/internal/middleware"
	"github.com/example/corpweb/internal/services"
)

// recordActivity appends an audit entry attributed to the session owner.
func recordActivity(c *fiber.Ctx, recorder *services.ActivityRecorder, action, entity, entityID string) {
	if recorder == nil {
		return
	}

	actor := ""
	if session, ok := middleware.GetSession(c); ok {
		actor = session.Email
	}
	recorder.Record(action, entity, entityID, actor)
}
