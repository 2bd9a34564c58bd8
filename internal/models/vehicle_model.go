package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModel — classification facultative plus fine qu'un type.
type VehicleModel struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	Name          string       `gorm:"size:255;not null" json:"name"`
	VehicleTypeID string       `gorm:"index;size:36;not null" json:"vehicleTypeId"`
	VehicleType   *VehicleType `json:"vehicleType,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (m *VehicleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
