package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner — créé implicitement la première fois qu'un véhicule cite un
// propriétaire inconnu. L'index unique sur name absorbe les créations
// concurrentes du même nom.
type Owner struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	Vehicles []Vehicle `gorm:"foreignKey:OwnerID" json:"-"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
