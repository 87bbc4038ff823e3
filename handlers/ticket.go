package handlers

import (
	"net/http"

	"kino/middleware"
	"kino/models"
	"kino/services/ticket"
	"kino/utils"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	Service ticket.TicketService
}

func NewTicketHandler(svc ticket.TicketService) *TicketHandler {
	return &TicketHandler{Service: svc}
}

func buyerFrom(c *gin.Context) ticket.Buyer {
	return ticket.Buyer{
		CustomerID: c.GetString(middleware.CustomerIDKey),
		IsAdmin:    c.GetString(middleware.RoleKey) == utils.RoleAdmin,
	}
}

// PurchaseTicketHandler handles POST /api/tickets.
func (h *TicketHandler) PurchaseTicketHandler(c *gin.Context) {
	var req models.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	receipt, err := h.Service.Purchase(c.Request.Context(), buyerFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// ListTicketsHandler handles GET /api/tickets.
func (h *TicketHandler) ListTicketsHandler(c *gin.Context) {
	tickets, err := h.Service.ListTickets(c.Request.Context(), buyerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}
