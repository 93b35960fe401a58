package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/config"
	"github.com/lacuchara/reservation-app/controllers"
	"github.com/lacuchara/reservation-app/middlewares"
	"github.com/lacuchara/reservation-app/session"
)

func SetupRouter(cfg *config.Config, manager *session.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow).RateLimit())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Everything below is session-scoped: the middleware resolves or creates
	// the caller's session and its private store.
	api := r.Group("/")
	api.Use(middlewares.SessionMiddleware(manager, cfg.SessionTTL))
	{
		// CATALOG
		api.GET("/restaurants", controllers.GetAllRestaurants)
		api.GET("/restaurants/search", controllers.SearchRestaurants)
		api.GET("/restaurants/:restaurant_id", controllers.GetRestaurantByID)
		api.GET("/restaurants/:restaurant_id/dishes", controllers.GetRestaurantDishes)

		// Add-restaurant form, strict limit on submissions
		addGroup := api.Group("/restaurants")
		addGroup.Use(middlewares.NewStrictRateLimiter())
		{
			addGroup.POST("", controllers.CreateRestaurant)
		}

		// MENU ASSETS
		api.PUT("/restaurants/:restaurant_id/menu", controllers.UploadMenuAsset)
		api.GET("/restaurants/:restaurant_id/menu", controllers.GetMenu)
		api.GET("/restaurants/:restaurant_id/menu/preview", controllers.GetMenuPreview)

		// RESERVATION WORKFLOW
		api.GET("/flow", controllers.GetFlow)
		api.POST("/flow/reserve/:restaurant_id", controllers.StartReserveFlow)
		api.POST("/flow/new", controllers.StartNewReservationFlow)
		api.POST("/flow/modify/:reservation_id", controllers.StartModifyFlow)
		api.POST("/flow/reset", controllers.ResetFlow)

		// RESERVATIONS
		api.GET("/reservations", controllers.GetAllReservations)
		api.GET("/reservations/:reservation_id", controllers.GetReservationByID)
		api.POST("/reservations", controllers.CreateReservation)
		api.PATCH("/reservations/:reservation_id", controllers.ModifyReservation)
		api.DELETE("/reservations/:reservation_id", controllers.CancelReservation)

		// REVIEWS
		api.POST("/reviews", controllers.CreateReviews)
		api.GET("/reviews", controllers.GetReviews)

		// PAGE SNAPSHOT + LIVE EVENTS
		api.GET("/state", controllers.GetState)
		api.GET("/ws", controllers.EventsHandler)
	}

	return r
}
