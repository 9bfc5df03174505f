package handlers

import (
	"net/http"

	"painterbook/models"
	"painterbook/services/scheduling"
	"painterbook/utils"

	"github.com/gin-gonic/gin"
)

// SchedulingHandler exposes the matching engine for read only queries.
type SchedulingHandler struct {
	Engine scheduling.MatchingEngine
}

func NewSchedulingHandler(engine scheduling.MatchingEngine) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine}
}

func bindWindow(c *gin.Context) (models.WindowQuery, models.TimeWindow, bool) {
	var q models.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime and endTime are required RFC3339 timestamps", err)
		return q, models.TimeWindow{}, false
	}
	window, err := models.NewTimeWindow(q.StartTime, q.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime must be before endTime", err)
		return q, models.TimeWindow{}, false
	}
	return q, window, true
}

// CheckConflictHandler handles GET /api/scheduling/conflict.
func (h *SchedulingHandler) CheckConflictHandler(c *gin.Context) {
	q, window, ok := bindWindow(c)
	if !ok {
		return
	}
	if q.PainterID == "" {
		utils.JSONError(c, http.StatusBadRequest, "painterId is required", nil)
		return
	}

	conflict, err := h.Engine.CheckConflict(c.Request.Context(), q.PainterID, window)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check conflicts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"painterId": q.PainterID, "hasConflict": conflict})
}

// SuggestAlternativesHandler handles GET /api/scheduling/suggestions.
func (h *SchedulingHandler) SuggestAlternativesHandler(c *gin.Context) {
	q, window, ok := bindWindow(c)
	if !ok {
		return
	}

	suggestions, err := h.Engine.SuggestAlternatives(c.Request.Context(), window, q.Limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute suggestions", err)
		return
	}

	resp := make([]models.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		resp = append(resp, s.Response())
	}
	c.JSON(http.StatusOK, resp)
}
