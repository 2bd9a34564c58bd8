package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sabotage — décision humaine de marquer un lot de faits consécutifs d'un
// véhicule, avec trace d'audit (motif, auteur, horodatage). Au plus un
// enregistrement par fait déclencheur : l'index unique sur trigger_fact_id
// garantit que le basculement réutilise la même ligne.
type Sabotage struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	TriggerFactID string `gorm:"uniqueIndex;size:36;not null" json:"triggerFactId"`
	TriggerFact   *Fact  `gorm:"foreignKey:TriggerFactID" json:"triggerFact,omitempty"`
	VehicleID     string `gorm:"index;size:36;not null" json:"vehicleId"`

	// le fait déclencheur plus jusqu'à 4 faits plus anciens
	AffectedFactIDs StringList `gorm:"type:text" json:"affectedFactIds"`

	IsActive  bool      `gorm:"not null" json:"isActive"`
	Reason    string    `gorm:"type:text" json:"reason"`
	CreatedBy string    `gorm:"size:255" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Sabotage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
