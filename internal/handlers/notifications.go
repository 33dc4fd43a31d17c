package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/models"
	"github.com/onboardflow/onboardflow/internal/notify"
	"gorm.io/gorm"
)

type SignedNotificationRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// NotifySigned sends the fixed contract-signed template to the project's
// photographer. Unlike the transition side effects, the send here is the
// whole operation, so it runs synchronously and its failure is the response.
func NotifySigned(ctx *gin.Context) {
	var req SignedNotificationRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var project models.Project

	if err := db.DB.Preload("Photographer").First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Database error when fetching project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := notify.Send(notify.ContractSigned(project.Photographer.Email, project)); err != nil {
		log.Printf("Failed to send signed notification for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending email"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
