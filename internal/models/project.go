package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	gorm.Model

	PhotographerID   uint   `gorm:"not null;index"`
	ClientEmail      string `gorm:"not null"`
	Name             string `gorm:"not null"`
	Amount           int64  `gorm:"not null"` // Deposit in minor currency units (cents)
	MagicLink        string `gorm:"uniqueIndex;not null"`
	Status           string `gorm:"not null;default:pending"`
	ContractSignedAt *time.Time
	PaidAt           *time.Time

	// Relationships
	Photographer Photographer `gorm:"foreignKey:PhotographerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Signatures   []Signature  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
