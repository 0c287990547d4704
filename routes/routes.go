package routes

import (
	"time"

	"sessionplanner/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options toggles optional route groups.
type Options struct {
	EnableDebug bool
}

// RegisterRecommendationRoutes registers recommendation endpoints.
func RegisterRecommendationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recommendations")
	{
		api.POST("", hb.RecommendHandler)
		api.GET("/:requestId", hb.GetRecommendationHandler)
	}
}

// RegisterBookingRoutes sets up booking and calendar endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/book", hb.BookHandler)
		api.GET("/ics/:bookingId", hb.CalendarHandler)
		api.GET("/bookings/:userId", hb.UserBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterDebugRoutes exposes store inspection; never enabled in production.
func RegisterDebugRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/debug/sessions", hb.DebugSessionsHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRecommendationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	if opts.EnableDebug {
		RegisterDebugRoutes(r, hb)
	}
}
