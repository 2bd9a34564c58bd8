package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fact — note textuelle horodatée attachée à un véhicule, listée du plus
// récent au plus ancien. La suppression d'un fait ne nettoie pas les
// références détenues par les enregistrements Sabotage.
type Fact struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	ReportNumber   string    `gorm:"size:64" json:"reportNumber"`
	PhotoProofDate string    `gorm:"size:64" json:"photoProofDate"`
	VehicleID      string    `gorm:"index;size:36;not null" json:"vehicleId"`
	IsSabotaged    bool      `gorm:"not null;default:false" json:"isSabotaged"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (f *Fact) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
