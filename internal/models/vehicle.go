package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle — la plaque est normalisée en majuscules avant persistance et
// unique au niveau du stockage. Au moins un de reportNumber / photoProofDate
// doit être renseigné (validé par la couche service).
type Vehicle struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	LicensePlate string `gorm:"uniqueIndex;size:32;not null" json:"licensePlate"`

	// ownerName est dénormalisé en plus de la référence ownerId
	OwnerName string `gorm:"size:255;not null" json:"ownerName"`
	OwnerID   string `gorm:"index;size:36" json:"ownerId"`
	Owner     *Owner `json:"owner,omitempty"`

	ReportNumber   string `gorm:"size:64" json:"reportNumber"`
	PhotoProofDate string `gorm:"size:64" json:"photoProofDate"`

	GroupusculeID  *string       `gorm:"index;size:36" json:"groupusculeId"`
	Groupuscule    *Groupuscule  `json:"groupuscule,omitempty"`
	VehicleTypeID  *string       `gorm:"index;size:36" json:"vehicleTypeId"`
	VehicleType    *VehicleType  `json:"vehicleType,omitempty"`
	VehicleModelID *string       `gorm:"index;size:36" json:"vehicleModelId"`
	VehicleModel   *VehicleModel `json:"vehicleModel,omitempty"`

	// drapeau écrit par POST /vehicles/sabotage, indépendant des
	// enregistrements Sabotage
	IsSabotaged bool `gorm:"not null;default:false" json:"isSabotaged"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
