package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PinCodeType string

const (
	PinAdmin PinCodeType = "ADMIN"
	PinUser  PinCodeType = "USER"
)

// PinCode — identifiant de connexion alternatif, indépendant des comptes User.
// Le code lui-même est le secret (comparaison exacte, pas de hachage).
type PinCode struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	Code      string      `gorm:"uniqueIndex;size:32;not null" json:"code"`
	Type      PinCodeType `gorm:"type:varchar(20);not null" json:"type"`
	Name      string      `gorm:"size:255;not null" json:"name"`
	IsActive  bool        `gorm:"not null" json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (p *PinCode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Role — ADMIN uniquement si le type du code est ADMIN.
func (p *PinCode) Role() UserRole {
	if p.Type == PinAdmin {
		return RoleAdmin
	}
	return RoleUser
}
