package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/api/response"
	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/llm"
	"github.com/JoshFink/commish/internal/observability"
	"github.com/JoshFink/commish/internal/pkg/schedule"
	"github.com/JoshFink/commish/internal/service/recap"
)

// RecapHandler handles recap generation endpoints
type RecapHandler struct {
	svc     *recap.Service
	metrics *observability.Metrics
}

// NewRecapHandler creates a new recap handler
func NewRecapHandler(svc *recap.Service, metrics *observability.Metrics) *RecapHandler {
	return &RecapHandler{svc: svc, metrics: metrics}
}

// Window reports whether the weekly recap window is open
// GET /api/recap/window
func (h *RecapHandler) Window(c *gin.Context) {
	now := time.Now()
	open, weekday := schedule.RecapWindowOpen(now)
	response.Success(c, gin.H{
		"open":                  open,
		"weekday":               weekday,
		"current_week":          schedule.CurrentWeek(now),
		"most_recent_completed": schedule.MostRecentCompletedWeek(now),
	})
}

// Stream generates a recap, pushing tokens as server-sent events. The
// stream ends with a "done" event carrying cost metadata, or an "error"
// event if generation fails partway.
// POST /api/recap/stream
func (h *RecapHandler) Stream(c *gin.Context) {
	var req recap.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid recap request body")
		return
	}
	if req.Week == 0 {
		req.Week = schedule.MostRecentCompletedWeek(time.Now())
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrCodeInvalidInput, err.Error())
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		response.InternalError(c, errors.New("streaming not supported"))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	result, err := h.svc.Generate(c.Request.Context(), req, func(delta string) error {
		c.SSEvent("delta", delta)
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are gone so the failure rides the stream itself.
		c.SSEvent("error", gin.H{
			"code":    errorCode(err),
			"message": err.Error(),
		})
		flusher.Flush()
		return
	}

	h.metrics.RecapGenerated(result.Cost.Model,
		result.Cost.PromptTokens, result.Cost.CompletionTokens,
		result.Cost.TotalCost.InexactFloat64())

	c.SSEvent("done", result)
	flusher.Flush()
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, recap.ErrInvalidRequest):
		return response.ErrCodeInvalidInput
	case errors.Is(err, llm.ErrContentFlagged):
		return response.ErrCodeContentFlagged
	case errors.Is(err, league.ErrLeagueNotFound):
		return response.ErrCodeNotFound
	default:
		return response.ErrCodeExternalAPIError
	}
}
