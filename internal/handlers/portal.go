package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/booking"
	"github.com/onboardflow/onboardflow/internal/models"
	"github.com/onboardflow/onboardflow/internal/notify"
	"github.com/onboardflow/onboardflow/internal/payments"
	"gorm.io/gorm"
)

type ProjectResponse struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	ClientEmail      string     `json:"client_email"`
	Amount           int64      `json:"amount"`
	Status           string     `json:"status"`
	ContractSignedAt *time.Time `json:"contract_signed_at"`
	PaidAt           *time.Time `json:"paid_at"`
	Step             int        `json:"step"`
}

type SubmitSignatureRequest struct {
	SignatureData string `json:"signature_data" binding:"required"`
}

func projectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:               project.ID,
		Name:             project.Name,
		ClientEmail:      project.ClientEmail,
		Amount:           project.Amount,
		Status:           project.Status,
		ContractSignedAt: project.ContractSignedAt,
		PaidAt:           project.PaidAt,
		Step:             booking.Step(project.Status),
	}
}

// findProjectBySlug resolves the capability token. It writes the error
// response itself; callers bail out when ok is false.
func findProjectBySlug(ctx *gin.Context) (models.Project, bool) {
	var project models.Project

	if err := db.DB.Where("magic_link = ?", ctx.Param("slug")).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		} else {
			log.Printf("Database error when fetching project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return models.Project{}, false
	}

	return project, true
}

// GetPortal returns the project state plus the portal step derived from it.
func GetPortal(ctx *gin.Context) {
	project, ok := findProjectBySlug(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project))
}

// SubmitSignature applies the pending -> signed transition. A resubmission
// for an already signed project is acknowledged without any new writes or
// emails.
func SubmitSignature(ctx *gin.Context) {
	var req SubmitSignatureRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Signature is required"})
		return
	}

	project, ok := findProjectBySlug(ctx)

	if !ok {
		return
	}

	result, err := booking.Sign(db.DB, &project, req.SignatureData)

	if err != nil {
		log.Printf("Failed to save signature for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signature"})
		return
	}

	if result == booking.Applied {
		var photographer models.Photographer

		if err := db.DB.First(&photographer, project.PhotographerID).Error; err != nil {
			log.Printf("Skipping signed notification, photographer lookup failed: %v", err)
		} else {
			notify.Enqueue(notify.ContractSigned(photographer.Email, project))
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"result":  result.String(),
		"project": projectResponse(project),
	})
}

// CreateCheckout requests a hosted checkout session for the deposit and
// hands the redirect URL back to the portal.
func CreateCheckout(ctx *gin.Context) {
	project, ok := findProjectBySlug(ctx)

	if !ok {
		return
	}

	if project.Status != booking.StatusSigned {
		if booking.AtLeast(project.Status, booking.StatusPaid) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Deposit already paid"})
		} else {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Contract must be signed before payment"})
		}
		return
	}

	session, err := payments.CreateSession(payments.CheckoutParams(project))

	if err != nil {
		log.Printf("Failed to create checkout session for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": session.URL})
}
