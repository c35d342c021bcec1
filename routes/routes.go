package routes

import (
	"net/http"
	"time"

	"tourguide/handlers"
	"tourguide/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes mounts the booking endpoints on g. All of them require a bearer token.
func RegisterBookingRoutes(g *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := g.Group("/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware(hb.Tokens))
		bookings.GET("", hb.Bookings.ListBookings)
		bookings.POST("", hb.Bookings.CreateBooking)
		bookings.GET("/:id", hb.Bookings.GetBooking)
		bookings.PUT("/:id", hb.Bookings.UpdateBooking)
		bookings.DELETE("/:id", hb.Bookings.CancelBooking)
	}
}

// RegisterAuthRoutes registers signup, login, logout and profile endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", hb.Auth.RegisterHandler)
		auth.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		protected := auth.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Tokens))
		protected.POST("/logout", hb.Auth.LogoutHandler)
		protected.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterCatalogRoutes registers destinations, hotels and cabs. Reads are public.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := []gin.HandlerFunc{middleware.JWTAuthMiddleware(hb.Tokens), middleware.RequireAdmin()}

	destinations := api.Group("/destinations")
	{
		destinations.GET("", hb.Catalog.ListDestinations)
		destinations.GET("/search", hb.Catalog.SearchDestinations)
		destinations.GET("/popular", hb.Catalog.PopularDestinations)
		destinations.GET("/:id", hb.Catalog.GetDestination)

		protected := destinations.Group("", admin...)
		protected.POST("", hb.Catalog.CreateDestination)
		protected.PUT("/:id", hb.Catalog.UpdateDestination)
		protected.DELETE("/:id", hb.Catalog.DeleteDestination)
		protected.POST("/:id/image", hb.Catalog.UploadDestinationImage)
	}

	hotels := api.Group("/hotels")
	{
		hotels.GET("", hb.Catalog.ListHotels)
		hotels.GET("/search", hb.Catalog.SearchHotels)
		hotels.GET("/available", hb.Catalog.AvailableHotels)
		hotels.GET("/:id", hb.Catalog.GetHotel)

		protected := hotels.Group("", admin...)
		protected.POST("", hb.Catalog.CreateHotel)
		protected.PUT("/:id", hb.Catalog.UpdateHotel)
		protected.DELETE("/:id", hb.Catalog.DeleteHotel)
		protected.POST("/:id/image", hb.Catalog.UploadHotelImage)
	}

	cabs := api.Group("/cabs")
	{
		cabs.GET("", hb.Catalog.ListCabs)
		cabs.GET("/filter", hb.Catalog.FilterCabs)
		cabs.GET("/:id", hb.Catalog.GetCab)

		protected := cabs.Group("", admin...)
		protected.POST("", hb.Catalog.CreateCab)
		protected.PUT("/:id", hb.Catalog.UpdateCab)
		protected.DELETE("/:id", hb.Catalog.DeleteCab)
		protected.POST("/:id/image", hb.Catalog.UploadCabImage)
	}
}

// RegisterContactRoutes registers the public contact form and the admin inbox.
func RegisterContactRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	contact := api.Group("/contact")
	{
		contact.POST("", hb.Contact.SubmitContact)

		inbox := contact.Group("", middleware.JWTAuthMiddleware(hb.Tokens), middleware.RequireAdmin())
		inbox.GET("", hb.Contact.ListContacts)
		inbox.GET("/:id", hb.Contact.GetContact)
		inbox.PUT("/:id/read", hb.Contact.MarkContactRead)
		inbox.PUT("/:id/resolve", hb.Contact.ResolveContact)
		inbox.DELETE("/:id", hb.Contact.DeleteContact)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MetricsMiddleware())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	api := r.Group("/api")
	RegisterAuthRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterContactRoutes(api, hb)

	// Booking routes are also served without the /api prefix.
	RegisterBookingRoutes(&r.RouterGroup, hb)

	RegisterHealthRoute(r, hb)
}
