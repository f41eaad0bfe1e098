package routes

import (
	"net/http"
	"time"

	"stellartours/handlers"
	"stellartours/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. All of them require a
// session; ownership of single-resource operations is enforced in the
// booking service.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.ListBookingsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/accommodations", hb.GetAccommodationsHandler)
	r.GET("/api/destinations", hb.GetDestinationsHandler)
	r.GET("/api/packages", hb.GetPackagesHandler)
}

// RegisterChatRoutes registers the advisor endpoints. POST serves guests;
// history read and clear require a session.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", middleware.OptionalSessionMiddleware(hb.Sessions), hb.ChatMessageHandler)
		api.GET("", middleware.SessionAuthMiddleware(hb.Sessions), hb.GetChatHistoryHandler)
		api.DELETE("", middleware.SessionAuthMiddleware(hb.Sessions), hb.ClearChatHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stellartours"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
