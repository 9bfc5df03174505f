package routes

import (
	"net/http"
	"time"

	"painterbook/config"
	"painterbook/handlers"
	"painterbook/middleware"
	"painterbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "Painter Booking API"
	Version     = "2.0.0"
)

// RegisterAvailabilityRoutes registers painter availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/availability")
	{
		api.POST("", hb.CreateAvailabilityHandler)
		api.GET("/me", hb.PainterAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers customer and painter booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.POST("/booking-request", middleware.RequireCustomer(), hb.Idempotency, hb.CreateBookingRequestHandler)
		api.GET("/me", middleware.RequireCustomer(), hb.CustomerBookingsHandler)
		api.GET("/painter", hb.PainterBookingsHandler)
	}

	// Legacy endpoint kept for older clients.
	r.POST("/booking-request", middleware.RequireCustomer(), hb.Idempotency, hb.CreateBookingRequestHandler)
}

// RegisterSchedulingRoutes exposes read only engine queries.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.GET("/conflict", hb.CheckConflictHandler)
		api.GET("/suggestions", hb.SuggestAlternativesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "OK",
			"timestamp":    time.Now().UTC().Format(time.RFC3339Nano),
			"service":      ServiceName,
			"version":      Version,
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type",
			middleware.CustomerIDHeader, middleware.PainterIDHeader,
			middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(utils.GetLogger()))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	r.Use(middleware.Identity())

	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSchedulingRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.RequestURI(),
		})
	})
}
