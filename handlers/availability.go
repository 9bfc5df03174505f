package handlers

import (
	"errors"
	"net/http"
	"strings"

	"painterbook/middleware"
	"painterbook/models"
	"painterbook/services/availability"
	"painterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// CreateAvailabilityHandler handles POST /availability.
func (h *AvailabilityHandler) CreateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime and endTime are required", err)
		return
	}

	painterID := middleware.PainterID(c)
	if body := strings.TrimSpace(req.PainterID); body != "" {
		painterID = body
	}

	window := models.TimeWindow{Start: req.StartTime, End: req.EndTime}
	created, err := h.Service.CreateAvailability(c.Request.Context(), painterID, window)
	switch {
	case errors.Is(err, availability.ErrMissingPainter):
		utils.JSONError(c, http.StatusBadRequest, "painterId is required", err)
		return
	case errors.Is(err, models.ErrInvalidWindow):
		utils.JSONError(c, http.StatusBadRequest, "startTime must be before endTime", err)
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create availability", err)
		return
	}

	logger.Debug("Availability stored", zap.String("availabilityID", created.ID))
	c.JSON(http.StatusOK, created.Response())
}

// GetPainterAvailabilityHandler handles GET /availability/me.
func (h *AvailabilityHandler) GetPainterAvailabilityHandler(c *gin.Context) {
	painterID := middleware.PainterID(c)
	list, err := h.Service.PainterAvailability(c.Request.Context(), painterID)
	if errors.Is(err, availability.ErrMissingPainter) {
		utils.JSONError(c, http.StatusBadRequest, "painterId is required", err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availabilities", err)
		return
	}

	resp := make([]models.AvailabilityResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, a.Response())
	}
	c.JSON(http.StatusOK, resp)
}
