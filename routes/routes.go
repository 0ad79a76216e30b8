package routes

import (
	"net/http"
	"time"

	"wanderly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.Register)
		api.POST("/signin", hb.Users.SignIn)
	}
}

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api")
	{
		api.Use(auth)
		api.GET("/users/me", hb.Users.GetMe)
		api.PUT("/profile", hb.Users.SaveProfile)
		api.GET("/profile/:userId", hb.Users.GetProfile)
	}
}

// RegisterListingRoutes registers endpoints for bookable offerings.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/listings")
	{
		api.Use(auth)
		api.POST("", hb.Listings.CreateListing)
		api.GET("", hb.Listings.ListByType)
		api.GET("/mine", hb.Listings.ListMine)
		api.GET("/:id", hb.Listings.GetListing)
		api.PATCH("/:id", hb.Listings.UpdateListing)
		api.DELETE("/:id", hb.Listings.DeleteListing)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/bookings")
	{
		api.Use(auth)
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("/mine", hb.Bookings.GetMyBookings)
		api.GET("/owned", hb.Bookings.GetOwnerBookings)
		api.GET("/:id", hb.Bookings.GetBooking)
		api.PATCH("/:id/status", hb.Bookings.UpdateBookingStatus)
		api.POST("/:id/cancel", hb.Bookings.CancelBooking)
	}
}

// RegisterNotificationRoutes registers the notification inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/notifications")
	{
		api.Use(auth)
		api.GET("", hb.Notifications.GetMyNotifications)
		api.POST("/:id/read", hb.Notifications.MarkRead)
	}
}

// RegisterSocialRoutes registers swipe and match endpoints.
func RegisterSocialRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api")
	{
		api.Use(auth)
		api.POST("/swipes", hb.Social.RecordSwipe)
		api.GET("/swipes/profiles", hb.Social.GetSwipeableProfiles)
		api.GET("/matches", hb.Social.GetMyMatches)
	}
}

// RegisterMessagingRoutes registers direct message endpoints.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api")
	{
		api.Use(auth)
		api.POST("/messages", hb.Messaging.SendMessage)
		api.GET("/messages/unread", hb.Messaging.UnreadCount)
		api.GET("/messages/:userId", hb.Messaging.GetMessages)
		api.POST("/messages/:userId/read", hb.Messaging.MarkMessagesRead)
		api.GET("/conversations", hb.Messaging.GetConversations)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Wanderly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb, auth)
	RegisterListingRoutes(r, hb, auth)
	RegisterBookingRoutes(r, hb, auth)
	RegisterNotificationRoutes(r, hb, auth)
	RegisterSocialRoutes(r, hb, auth)
	RegisterMessagingRoutes(r, hb, auth)
}
