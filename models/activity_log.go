package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is append-only; the API never updates or deletes it.
type ActivityLog struct {
	ID           string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ActionType   string            `gorm:"column:action_type;type:varchar(64);not null;index" json:"action_type"`
	ResourceType string            `gorm:"column:resource_type;type:varchar(64);not null;index" json:"resource_type"`
	ResourceID   string            `gorm:"column:resource_id;type:varchar(255);index" json:"resource_id"`
	ActorID      string            `gorm:"column:actor_id;type:varchar(255);index" json:"actor_id"`
	IPAddress    string            `gorm:"column:ip_address;type:varchar(64)" json:"ip_address"`
	Metadata     datatypes.JSONMap `gorm:"column:metadata" json:"metadata"`
	CreatedAt    time.Time         `gorm:"index" json:"created_at"`
}

func (l ActivityLog) GetID() string { return l.ID }

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
