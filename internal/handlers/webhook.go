package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/booking"
	"github.com/onboardflow/onboardflow/internal/models"
	"github.com/onboardflow/onboardflow/internal/notify"
	"github.com/onboardflow/onboardflow/internal/payments"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StripeWebhook consumes gateway events. Nothing in the payload is trusted
// before the signature verifies. Verified events are acked with 200 once
// handled and recorded, whether or not they had an effect; store failures
// answer 500 so the gateway redelivers.
func StripeWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	event, err := payments.VerifyEvent(payload, ctx.GetHeader("Stripe-Signature"))

	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	// Redelivered events are recognized by ID and acked without effect.
	var existing models.PaymentEvent

	err = db.DB.Where("stripe_id = ?", event.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking payment event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Process before recording. A store failure leaves no dedup row behind,
	// so the gateway's redelivery gets another chance at the transition.
	if event.Type == "checkout.session.completed" {
		if err := handleCheckoutCompleted(event); err != nil {
			log.Printf("Failed to process payment event %s: %v", event.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else {
		log.Printf("Unhandled event type: %s", event.Type)
	}

	record := models.PaymentEvent{
		StripeID: event.ID,
		Type:     string(event.Type),
		Payload:  datatypes.JSON(payload),
	}

	if err := db.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to record payment event %s: %v", event.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"received": true})
}

// handleCheckoutCompleted returns an error only for store failures. Malformed
// or unroutable events will never succeed on redelivery, so they are logged
// and acked instead.
func handleCheckoutCompleted(event stripe.Event) error {
	var session stripe.CheckoutSession

	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Printf("Failed to parse checkout session from event %s: %v", event.ID, err)
		return nil
	}

	rawID := session.Metadata["project_id"]

	if rawID == "" {
		return nil
	}

	projectID, err := strconv.ParseUint(rawID, 10, 32)

	if err != nil {
		log.Printf("Invalid project ID %q in event %s", rawID, event.ID)
		return nil
	}

	var project models.Project

	if err := db.DB.First(&project, uint(projectID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("No project %d for event %s", projectID, event.ID)
			return nil
		}
		return err
	}

	result, err := booking.ConfirmPayment(db.DB, &project)

	if err != nil {
		return err
	}

	switch result {
	case booking.Applied:
		var photographer models.Photographer

		if err := db.DB.First(&photographer, project.PhotographerID).Error; err != nil {
			log.Printf("Skipping payment notification, photographer lookup failed: %v", err)
		} else {
			notify.Enqueue(notify.PaymentReceived(photographer.Email, project))
		}

		notify.Enqueue(notify.BookingConfirmed(project))
	case booking.NoOp:
		log.Printf("Ignoring replayed payment event for project %d", project.ID)
	case booking.Rejected:
		log.Printf("Rejecting payment event for project %d in status %s", project.ID, project.Status)
	}

	return nil
}
