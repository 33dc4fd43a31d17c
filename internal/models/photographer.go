package models

import "gorm.io/gorm"

type Photographer struct {
	gorm.Model

	Email string `gorm:"uniqueIndex;not null"`

	// Relationships
	Projects []Project `gorm:"foreignKey:PhotographerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
