package handlers

import (
	"net/http"

	"kino/middleware"
	"kino/models"
	"kino/services/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	Service customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

// RegisterHandler handles POST /api/registration.
func (h *CustomerHandler) RegisterHandler(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("registration", zap.String("customerId", created.ID))
	c.JSON(http.StatusCreated, created)
}

// TokenHandler handles POST /api/token.
func (h *CustomerHandler) TokenHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/logout.
func (h *CustomerHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), c.GetString(middleware.CustomerIDKey), c.GetString(middleware.TokenKey)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ListCustomersHandler handles GET /api/users.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	all, err := h.Service.GetAllCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}
