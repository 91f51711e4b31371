package api

import (
	"log"
	stdhttp "net/http"

	"tripplanner/internal/catalog"
	intconfig "tripplanner/internal/config"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, store *catalog.Store) *gin.Engine {
	h.Setup(env, store)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Catalog (read-only)
		api.GET("/cities", h.GetCities)
		api.GET("/cities/:city/pois", h.GetCityPois)
		api.GET("/transport-routes", h.GetTransportRoutes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Trips
		trips := api.Group("/trips")
		trips.POST("/plan", h.PlanTrip)
		trips.POST("/plan/pdf", h.PlanTripPDF)
		trips.GET("/:id", h.GetTrip)
		trips.GET("/:id/recommendations", h.GetTripRecommendations)

		authed := trips.Group("")
		authed.Use(middleware.RequireAuth(h.JWTSecret()))
		authed.POST("", h.SaveTrip)
		authed.GET("", h.ListTrips)
		authed.DELETE("/:id", h.DeleteTrip)

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(h.JWTSecret()), middleware.RequireRoles("admin"))
		admin.GET("/trips", h.AdminListTrips)
	}

	return r
}
