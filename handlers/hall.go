package handlers

import (
	"net/http"

	"kino/models"
	"kino/services/hall"

	"github.com/gin-gonic/gin"
)

type HallHandler struct {
	Service hall.HallService
}

func NewHallHandler(svc hall.HallService) *HallHandler {
	return &HallHandler{Service: svc}
}

func (h *HallHandler) ListHallsHandler(c *gin.Context) {
	halls, err := h.Service.ListHalls(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, halls)
}

func (h *HallHandler) GetHallHandler(c *gin.Context) {
	found, err := h.Service.GetHall(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *HallHandler) CreateHallHandler(c *gin.Context) {
	var req models.HallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Service.CreateHall(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHallHandler handles PUT /api/cinema/:id. Halls with sold tickets for
// upcoming sessions answer 406.
func (h *HallHandler) UpdateHallHandler(c *gin.Context) {
	var req models.HallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Service.UpdateHall(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
