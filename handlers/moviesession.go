package handlers

import (
	"net/http"
	"time"

	"kino/models"
	"kino/services/moviesession"
	"kino/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MovieSessionHandler struct {
	Service moviesession.MovieSessionService
	Clock   func() time.Time
}

func NewMovieSessionHandler(svc moviesession.MovieSessionService) *MovieSessionHandler {
	return &MovieSessionHandler{Service: svc, Clock: time.Now}
}

// ListSessionsHandler handles GET /api/movie?date=YYYY-MM-DD&order=-price.
func (h *MovieSessionHandler) ListSessionsHandler(c *gin.Context) {
	filter := models.SessionListFilter{EndsAfter: h.Clock()}

	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(utils.DateLayout, raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date must look like "+utils.DateLayout)
			return
		}
		filter.Day = &day
	}

	field, desc, err := moviesession.ParseOrder(c.Query("order"))
	if err != nil {
		respondError(c, err)
		return
	}
	filter.SortField, filter.SortDesc = field, desc

	sessions, err := h.Service.ListSessions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *MovieSessionHandler) GetSessionHandler(c *gin.Context) {
	ms, err := h.Service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// CreateSessionsHandler handles POST /api/movie. One session is created per
// day of the window; any collision in the hall rejects the whole request.
func (h *MovieSessionHandler) CreateSessionsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MovieSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.Service.CreateSessions(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("sessions scheduled", zap.String("hallId", req.HallID), zap.Int("count", len(created)))
	c.JSON(http.StatusCreated, created)
}

func (h *MovieSessionHandler) UpdateSessionHandler(c *gin.Context) {
	var upd models.MovieSessionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	ms, err := h.Service.UpdateSession(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

func (h *MovieSessionHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
