package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/booking"
	"github.com/onboardflow/onboardflow/internal/config"
	"github.com/onboardflow/onboardflow/internal/models"
	"github.com/onboardflow/onboardflow/internal/notify"
	"github.com/onboardflow/onboardflow/internal/utils"
	"gorm.io/gorm"
)

type CreateLinkRequest struct {
	PhotographerEmail string  `json:"photographer_email" binding:"required,email"`
	ClientEmail       string  `json:"client_email" binding:"required,email"`
	ProjectName       string  `json:"project_name" binding:"required"`
	Amount            float64 `json:"amount" binding:"required,gt=0"` // Decimal currency units
}

// CreateMagicLink finds or creates the photographer, creates a pending
// project behind a fresh slug, and mails the link to the photographer.
func CreateMagicLink(ctx *gin.Context) {
	var req CreateLinkRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	photographerEmail := strings.ToLower(strings.TrimSpace(req.PhotographerEmail))
	clientEmail := strings.ToLower(strings.TrimSpace(req.ClientEmail))

	var photographer models.Photographer

	err := db.DB.Where("email = ?", photographerEmail).First(&photographer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		photographer = models.Photographer{Email: photographerEmail}

		if err := db.DB.Create(&photographer).Error; err != nil {
			log.Printf("Failed to create photographer: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else if err != nil {
		log.Printf("Database error when fetching photographer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	slug, err := utils.NewSlug()

	if err != nil {
		log.Printf("Failed to generate slug: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	project := models.Project{
		PhotographerID: photographer.ID,
		ClientEmail:    clientEmail,
		Name:           req.ProjectName,
		Amount:         utils.ToMinorUnits(req.Amount),
		MagicLink:      slug,
		Status:         booking.StatusPending,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	magicLink := config.Get().AppURL + "/client/" + slug

	notify.Enqueue(notify.MagicLinkReady(photographer.Email, magicLink))

	ctx.JSON(http.StatusCreated, gin.H{"url": magicLink, "slug": slug})
}
