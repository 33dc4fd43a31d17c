package booking

import (
	"time"

	"github.com/onboardflow/onboardflow/internal/models"
	"gorm.io/gorm"
)

// Result tags the outcome of a transition attempt. Callers treat NoOp as a
// redelivered or repeated trigger and skip side effects for it.
type Result int

const (
	Rejected Result = iota
	NoOp
	Applied
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case NoOp:
		return "noop"
	default:
		return "rejected"
	}
}

// Sign moves a pending project to signed, persisting the captured signature
// and the signing timestamp in one transaction. A project that already
// signed (or progressed further) is left untouched.
func Sign(gdb *gorm.DB, project *models.Project, signatureData string) (Result, error) {
	if AtLeast(project.Status, StatusSigned) {
		return NoOp, nil
	}

	now := time.Now()

	err := gdb.Transaction(func(tx *gorm.DB) error {
		signature := models.Signature{
			ProjectID: project.ID,
			Data:      signatureData,
		}

		if err := tx.Create(&signature).Error; err != nil {
			return err
		}

		return tx.Model(project).Updates(map[string]interface{}{
			"status":             StatusSigned,
			"contract_signed_at": now,
		}).Error
	})

	if err != nil {
		return Rejected, err
	}

	project.Status = StatusSigned
	project.ContractSignedAt = &now

	return Applied, nil
}

// ConfirmPayment moves a signed project to paid. Triggered only by the
// verified gateway event, never by direct client action. A replayed event
// for an already paid project is a NoOp; an event for a project that never
// signed is rejected, since checkout cannot have happened yet.
func ConfirmPayment(gdb *gorm.DB, project *models.Project) (Result, error) {
	if AtLeast(project.Status, StatusPaid) {
		return NoOp, nil
	}

	if project.Status != StatusSigned {
		return Rejected, nil
	}

	now := time.Now()

	if err := gdb.Model(project).Updates(map[string]interface{}{
		"status":  StatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		return Rejected, err
	}

	project.Status = StatusPaid
	project.PaidAt = &now

	return Applied, nil
}
