package routes

import (
	"time"

	"kino/handlers"
	"kino/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login, logout and the admin customer listing.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/registration", middleware.AnonymousOnlyMiddleware(hb.Tokens), hb.RegisterHandler)
		api.POST("/token", hb.TokenHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthCustomerMiddleware(hb.Tokens))
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/users", middleware.AdminOnlyMiddleware(), hb.ListCustomersHandler)
	}
}

// RegisterHallRoutes registers cinema hall endpoints. Reads are public.
func RegisterHallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cinema")
	{
		api.GET("", hb.ListHallsHandler)
		api.GET("/:id", hb.GetHallHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthCustomerMiddleware(hb.Tokens), middleware.AdminOnlyMiddleware())
		admin.POST("", hb.CreateHallHandler)
		admin.PUT("/:id", hb.UpdateHallHandler)
	}
}

// RegisterMovieSessionRoutes registers the schedule endpoints. Reads are public.
func RegisterMovieSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/movie")
	{
		api.GET("", hb.ListSessionsHandler)
		api.GET("/:id", hb.GetSessionHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthCustomerMiddleware(hb.Tokens), middleware.AdminOnlyMiddleware())
		admin.POST("", hb.CreateSessionsHandler)
		admin.PUT("/:id", hb.UpdateSessionHandler)
		admin.DELETE("/:id", hb.DeleteSessionHandler)
	}
}

// RegisterTicketRoutes sets up ticket purchase and history.
func RegisterTicketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	ticketGroup := r.Group("/api/tickets")
	{
		ticketGroup.Use(middleware.JWTAuthCustomerMiddleware(hb.Tokens))
		ticketGroup.POST("", hb.PurchaseTicketHandler)
		ticketGroup.GET("", hb.ListTicketsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterHallRoutes(r, hb)
	RegisterMovieSessionRoutes(r, hb)
	RegisterTicketRoutes(r, hb)
}
