package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshFink/commish/internal/api/handlers"
	"github.com/JoshFink/commish/internal/auth"
	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
	"github.com/JoshFink/commish/internal/llm"
	rankingengine "github.com/JoshFink/commish/internal/ranking"
	"github.com/JoshFink/commish/internal/service/rankings"
	"github.com/JoshFink/commish/internal/service/recap"
)

type fakeSource struct{}

func (fakeSource) FetchSeason(_ context.Context, _ league.Platform, leagueID string, week int) (*league.Snapshot, error) {
	return &league.Snapshot{
		Platform: league.PlatformSleeper,
		LeagueID: leagueID,
		Name:     "Test League",
		Week:     week,
		Teams: []league.TeamSeasonStats{
			{TeamID: "1", TeamName: "Alpha", Wins: 2, Losses: 0,
				PointsFor: []float64{120, 130}, PointsAgainst: []float64{90, 95}},
			{TeamID: "2", TeamName: "Bravo", Wins: 0, Losses: 2,
				PointsFor: []float64{90, 95}, PointsAgainst: []float64{120, 130}},
		},
		Matchups: []league.MatchupResult{
			{MatchupID: "1", Week: week, WinnerName: "Alpha", WinnerPts: 130,
				LoserName: "Bravo", LoserPts: 95},
		},
	}, nil
}

type fakeCompleter struct{}

func (fakeCompleter) Moderate(context.Context, string) error { return nil }

func (fakeCompleter) StreamCompletion(_ context.Context, model, _ string, onDelta func(string) error) (llm.Cost, error) {
	for _, chunk := range []string{"What ", "a ", "week!"} {
		if err := onDelta(chunk); err != nil {
			return llm.Cost{}, err
		}
	}
	return llm.Cost{Model: model, PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewManager("hunter2", time.Hour)
	engine, err := rankingengine.New(ranking.DefaultCriteria())
	require.NoError(t, err)

	r := New(&Config{
		Sessions:        sessions,
		HealthHandler:   handlers.NewHealthHandler("test"),
		AuthHandler:     handlers.NewAuthHandler(sessions),
		ModelsHandler:   handlers.NewModelsHandler(),
		RankingsHandler: handlers.NewRankingsHandler(rankings.NewService(fakeSource{}, engine), nil),
		RecapHandler:    handlers.NewRecapHandler(recap.NewService(fakeSource{}, fakeCompleter{}), nil),
		PDFHandler:      handlers.NewPDFHandler(),
	})
	return r, sessions
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data auth.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func authedRequest(method, path string, token string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestHealthIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/api/models", "/api/rankings/latest", "/api/recap/window"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestModelsList(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/models", token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gpt-4o-mini")
}

func TestModelEstimate(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet,
		"/api/models/gpt-4o-mini/estimate?input_chars=4000&output_tokens=1000", token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data llm.Cost `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1000, body.Data.PromptTokens)
	assert.True(t, body.Data.Estimated)
}

func TestRankingsGenerateAndLatest(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/rankings", token,
		[]byte(`{"platform":"sleeper","league_id":"123","week":2}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alpha")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet,
		"/api/rankings/latest?platform=sleeper&league_id=123", token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data ranking.Snapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Test League", body.Data.LeagueName)
	assert.Equal(t, 2, body.Data.Week)
	assert.Equal(t, "Alpha", body.Data.Rankings.Comprehensive[0].TeamName)
}

func TestRankingsLatestMissing(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet,
		"/api/rankings/latest?platform=sleeper&league_id=none", token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecapStream(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/recap/stream", token,
		[]byte(`{"platform":"sleeper","league_id":"123","week":2,"persona":"a grumpy pirate","model":"gpt-4o-mini"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, body, "event:delta")
	assert.Contains(t, body, "What ")
	assert.Contains(t, body, "event:done")
	assert.Contains(t, body, "Test League")
}

func TestRecapStreamRejectsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/recap/stream", token,
		[]byte(`{"platform":"sleeper","league_id":"123","week":2,"persona":"pirate","model":"gpt-99"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestPDFExport(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/recap/pdf", token,
		[]byte(`{"league_name":"Test League","week":2,"persona":"pirate","content":"Recap text."}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Test_League_Week_2_pirate")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/auth/logout", token, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/models", token, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
