package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Record is implemented by every persisted resource.
type Record interface {
	GetID() string
}

// Base replaces gorm.Model: string identifiers and no soft delete.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Base) GetID() string { return b.ID }

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// NameKeyColumn carries the unique index of every text business key.
const NameKeyColumn = "name_key"

// Key stores the case-folded business key next to the displayed one.
type Key struct {
	NameKey string `gorm:"column:name_key;type:varchar(255);not null;default:''" json:"-"`
}

// Keyed records refresh NameKey from their business key.
type Keyed interface {
	FoldKey()
}

// Fold is the case folding used for both the stored key and lookups.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
