package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Groupuscule — organisation à laquelle un véhicule peut appartenir
// (au plus une). La suppression entraîne celle de ses véhicules.
type Groupuscule struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (g *Groupuscule) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
