package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelagency/internal/config"
	h "travelagency/internal/http/handlers"
	"travelagency/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, deps h.API) *gin.Engine {
	h.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.RequireAuth(deps.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", deps.Register)
		auth.POST("/login", deps.Login)
		auth.GET("/me", authRequired, deps.Me)

		// Catalog
		trips := api.Group("/trips")
		trips.GET("", deps.ListTrips)
		trips.GET("/:id", deps.GetTrip)
		trips.POST("/:id/quote", deps.QuoteTrip)

		hotels := api.Group("/hotels")
		hotels.GET("", deps.ListHotels)
		hotels.GET("/:id", deps.GetHotel)

		api.POST("/contact", deps.SubmitContact)

		// Reservations
		reservations := api.Group("/reservations", authRequired)
		reservations.POST("", deps.CreateReservation)
		reservations.GET("/mine", deps.MyReservations)
		reservations.GET("/:id", deps.GetReservation)
		reservations.GET("/:id/invoice", deps.ReservationInvoice)

		notifications := api.Group("/notifications", authRequired)
		notifications.GET("", deps.MyNotifications)
		notifications.PUT("/:id/read", deps.MarkNotificationRead)

		// Back office
		admin := api.Group("/admin", authRequired, middleware.RequireRoles("admin"))
		admin.POST("/trips", deps.CreateTrip)
		admin.PUT("/trips/:id", deps.UpdateTrip)
		admin.DELETE("/trips/:id", deps.DeleteTrip)
		admin.POST("/hotels", deps.CreateHotel)
		admin.PUT("/hotels/:id", deps.UpdateHotel)
		admin.DELETE("/hotels/:id", deps.DeleteHotel)
		admin.GET("/reservations", deps.AdminReservations)
		admin.PUT("/reservations/:id/status", deps.UpdateReservationStatus)
		admin.GET("/contact", deps.ListContact)
		admin.GET("/dashboard", deps.Dashboard)
	}

	h.SetRouter(r)
	return r
}
