package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotel-admin/models"
)

// ActivityLogger appends audit entries. Entries are never updated.
type ActivityLogger struct {
	DB *gorm.DB
}

func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{DB: db}
}

func (s *ActivityLogger) Log(ctx context.Context, entry *models.ActivityLog) error {
	if entry == nil {
		return gorm.ErrInvalidData
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.IPAddress == "" {
		entry.IPAddress = UnknownIP
	}
	return s.DB.WithContext(ctx).Create(entry).Error
}
