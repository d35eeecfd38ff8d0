package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/api/response"
	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
	"github.com/JoshFink/commish/internal/observability"
	"github.com/JoshFink/commish/internal/pkg/schedule"
	rankingformat "github.com/JoshFink/commish/internal/ranking"
	"github.com/JoshFink/commish/internal/service/rankings"
)

// RankingsHandler handles power ranking endpoints
type RankingsHandler struct {
	svc     *rankings.Service
	metrics *observability.Metrics
}

// NewRankingsHandler creates a new rankings handler
func NewRankingsHandler(svc *rankings.Service, metrics *observability.Metrics) *RankingsHandler {
	return &RankingsHandler{svc: svc, metrics: metrics}
}

// GenerateRequest asks for fresh rankings.
type GenerateRequest struct {
	Platform string `json:"platform" binding:"required"`
	LeagueID string `json:"league_id" binding:"required"`
	Week     int    `json:"week"`
}

// Generate fetches league data and computes all three ranking methods
// POST /api/rankings
func (h *RankingsHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "platform and league_id are required")
		return
	}

	week := req.Week
	if week == 0 {
		week = schedule.MostRecentCompletedWeek(time.Now())
	}
	if week < 1 {
		response.Error(c, http.StatusBadRequest, response.ErrCodeInvalidInput, "no completed weeks yet this season")
		return
	}

	snap, err := h.svc.Generate(c.Request.Context(), league.Platform(req.Platform), req.LeagueID, week)
	if err != nil {
		h.writeError(c, req.Platform, err)
		return
	}

	h.metrics.RankingsComputed()
	response.Success(c, snap)
}

// Latest returns the cached snapshot for a league
// GET /api/rankings/latest?platform=sleeper&league_id=123
func (h *RankingsHandler) Latest(c *gin.Context) {
	platform := c.Query("platform")
	leagueID := c.Query("league_id")
	if platform == "" || leagueID == "" {
		response.BadRequest(c, "platform and league_id are required")
		return
	}

	snap, ok := h.svc.Latest(league.Platform(platform), leagueID)
	if !ok {
		response.NotFound(c, "no rankings generated yet for this league")
		return
	}
	response.Success(c, snap)
}

// TableView pairs formatted table rows with the printable text block.
type TableView struct {
	LeagueName string                   `json:"league_name"`
	Week       int                      `json:"week"`
	Rows       []rankingformat.TableRow `json:"rows"`
	Text       string                   `json:"text"`
}

// Table returns formatted rows plus the printable list view
// GET /api/rankings/table?platform=sleeper&league_id=123
func (h *RankingsHandler) Table(c *gin.Context) {
	platform := c.Query("platform")
	leagueID := c.Query("league_id")
	if platform == "" || leagueID == "" {
		response.BadRequest(c, "platform and league_id are required")
		return
	}

	snap, ok := h.svc.Latest(league.Platform(platform), leagueID)
	if !ok {
		response.NotFound(c, "no rankings generated yet for this league")
		return
	}

	response.Success(c, TableView{
		LeagueName: snap.LeagueName,
		Week:       snap.Week,
		Rows:       rankingformat.TableRows(snap.Rankings),
		Text:       rankingformat.ListView(snap.Rankings, snap.Week),
	})
}

func (h *RankingsHandler) writeError(c *gin.Context, platform string, err error) {
	switch {
	case errors.Is(err, ranking.ErrInvalidInput), errors.Is(err, ranking.ErrInvalidCriteria):
		response.Error(c, http.StatusBadRequest, response.ErrCodeInvalidInput, err.Error())
	case errors.Is(err, league.ErrLeagueNotFound):
		response.NotFound(c, "league not found")
	case errors.Is(err, league.ErrUnsupportedPlatform):
		response.BadRequest(c, "unsupported platform "+platform)
	default:
		response.ExternalAPIError(c, platform, err)
	}
}
