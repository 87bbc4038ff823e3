package handlers

import (
	"kino/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and what the routes need to guard them.
type HandlerBundle struct {
	Tokens utils.TokenStore

	// Customer endpoints
	RegisterHandler      gin.HandlerFunc
	TokenHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	ListCustomersHandler gin.HandlerFunc

	// Hall endpoints
	ListHallsHandler  gin.HandlerFunc
	GetHallHandler    gin.HandlerFunc
	CreateHallHandler gin.HandlerFunc
	UpdateHallHandler gin.HandlerFunc

	// Movie session endpoints
	ListSessionsHandler   gin.HandlerFunc
	GetSessionHandler     gin.HandlerFunc
	CreateSessionsHandler gin.HandlerFunc
	UpdateSessionHandler  gin.HandlerFunc
	DeleteSessionHandler  gin.HandlerFunc

	// Ticket endpoints
	PurchaseTicketHandler gin.HandlerFunc
	ListTicketsHandler    gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
