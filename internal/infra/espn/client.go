// Package espn fetches league data from the ESPN Fantasy v3 API. Private
// leagues authenticate with the SWID and espn_s2 cookies the user lifts from
// a logged-in browser session.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client handles ESPN Fantasy API requests
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Credentials carry the cookie pair for private leagues. Leave both empty
// for public leagues.
type Credentials struct {
	SWID   string
	EspnS2 string
}

// NewClient creates a new ESPN client. An empty baseURL uses the public
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LeagueResponse is the league resource with mTeam and mMatchup views.
type LeagueResponse struct {
	ID       int      `json:"id"`
	SeasonID int      `json:"seasonId"`
	Status   Status   `json:"status"`
	Settings Settings `json:"settings"`
	Teams    []Team   `json:"teams"`
	Schedule []Match  `json:"schedule"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	IsActive             bool `json:"isActive"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbrev"`
	Name         string `json:"name"`
	Record       Record `json:"record"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// Match is one scheduled matchup; completed games carry totals.
type Match struct {
	ID              int       `json:"id"`
	MatchupPeriodID int       `json:"matchupPeriodId"`
	Winner          string    `json:"winner"`
	Home            TeamScore `json:"home"`
	Away            TeamScore `json:"away"`
}

type TeamScore struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}

// GetLeague fetches the league with team and matchup views for a season.
func (c *Client) GetLeague(ctx context.Context, leagueID string, year int, creds Credentials) (*LeagueResponse, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%s?view=mTeam&view=mMatchup",
		c.baseURL, year, leagueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if creds.SWID != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: creds.SWID})
	}
	if creds.EspnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: creds.EspnS2})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("ESPN API rejected credentials: status=%d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ESPN API error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var league LeagueResponse
	if err := json.Unmarshal(respBody, &league); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &league, nil
}
