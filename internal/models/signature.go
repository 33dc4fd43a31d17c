package models

import "gorm.io/gorm"

type Signature struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index"`
	Data      string `gorm:"type:text;not null"` // Encoded signature image (data URL)

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
