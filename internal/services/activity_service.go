package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/logger"
	"github.com/example/corpweb/internal/models"
)

// ActivityRecorder appends audit-trail entries for back-office mutations.
type ActivityRecorder struct {
	db *gorm.DB
}

// NewActivityRecorder constructs an ActivityRecorder.
func NewActivityRecorder(db *gorm.DB) *ActivityRecorder {
	return &ActivityRecorder{db: db}
}

// Record writes one audit entry. Failures are logged, never surfaced: the
// audit trail must not break the mutation it describes.
func (r *ActivityRecorder) Record(action, entity, entityID, actor string) {
	entry := models.ActivityLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Actor:    actor,
	}

	if err := r.db.Create(&entry).Error; err != nil {
		logger.L.Error("failed to record activity",
			zap.String("action", action),
			zap.String("entity", entity),
			zap.Error(err),
		)
	}
}
