package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/internal/handlers"
	"github.com/onboardflow/onboardflow/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/links", handlers.CreateMagicLink)

		portal := api.Group("/portal")
		{
			portal.GET("/:slug", handlers.GetPortal)
			portal.POST("/:slug/signature", handlers.SubmitSignature)
			portal.POST("/:slug/checkout", handlers.CreateCheckout)
		}

		api.POST("/email/signed", handlers.NotifySigned)
		api.POST("/webhooks/stripe", handlers.StripeWebhook)
	}

	return r
}
