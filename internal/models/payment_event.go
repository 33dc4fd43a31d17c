package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentEvent records every verified gateway event so that redelivered
// events can be recognized and ignored.
type PaymentEvent struct {
	gorm.Model

	StripeID string         `gorm:"uniqueIndex;not null"`
	Type     string         `gorm:"not null"`
	Payload  datatypes.JSON `gorm:"type:jsonb"`
}
