package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Actor    string `gorm:"size:255" json:"actor"`
	Entity   string `gorm:"size:50;not null" json:"entity"`   // "vehicle", "fact", "sabotage"...
	EntityID string `gorm:"size:36" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"`   // "create", "update", "delete", "toggle"
	Details  string `gorm:"type:text" json:"details"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
