// Package yahoo fetches league data from the Yahoo Fantasy Sports API.
// Yahoo requires a three-legged OAuth2 flow; the out-of-band redirect lets
// the commissioner paste the verification code back into the CLI.
package yahoo

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Endpoint is Yahoo's OAuth2 token endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
	TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
}

// Client handles Yahoo Fantasy API requests
type Client struct {
	baseURL    string
	conf       *oauth2.Config
	httpClient *http.Client
}

// NewClient creates a new Yahoo client. An empty baseURL uses the public
// endpoint; an empty redirectURL uses the out-of-band flow.
func NewClient(baseURL, clientID, clientSecret, redirectURL string) *Client {
	if baseURL == "" {
		baseURL = "https://fantasysports.yahooapis.com/fantasy/v2"
	}
	if redirectURL == "" {
		redirectURL = "oob"
	}
	return &Client{
		baseURL: baseURL,
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL returns the consent page URL the user must visit.
func (c *Client) AuthURL(state string) string {
	return c.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted verification code for a token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange auth code: %w", err)
	}
	return token, nil
}

// Authorize installs a token-refreshing HTTP client. Must be called before
// any fantasy API request.
func (c *Client) Authorize(ctx context.Context, token *oauth2.Token) {
	c.httpClient = c.conf.Client(ctx, token)
	c.httpClient.Timeout = 10 * time.Second
}

// fantasyContent is the envelope Yahoo wraps every resource in.
type fantasyContent struct {
	XMLName xml.Name    `xml:"fantasy_content"`
	League  leagueEntry `xml:"league"`
}

type leagueEntry struct {
	LeagueKey  string     `xml:"league_key"`
	Name       string     `xml:"name"`
	CurrentWk  int        `xml:"current_week"`
	Standings  standings  `xml:"standings"`
	Scoreboard scoreboard `xml:"scoreboard"`
}

type standings struct {
	Teams []teamEntry `xml:"teams>team"`
}

type teamEntry struct {
	TeamKey   string        `xml:"team_key"`
	Name      string        `xml:"name"`
	Standings teamStandings `xml:"team_standings"`
	Points    teamPoints    `xml:"team_points"`
}

type teamStandings struct {
	Rank          int           `xml:"rank"`
	Outcomes      outcomeTotals `xml:"outcome_totals"`
	PointsFor     float64       `xml:"points_for"`
	PointsAgainst float64       `xml:"points_against"`
}

type outcomeTotals struct {
	Wins   int `xml:"wins"`
	Losses int `xml:"losses"`
	Ties   int `xml:"ties"`
}

type teamPoints struct {
	Week  int     `xml:"week"`
	Total float64 `xml:"total"`
}

type scoreboard struct {
	Week     int       `xml:"week"`
	Matchups []matchup `xml:"matchups>matchup"`
}

type matchup struct {
	Week   int         `xml:"week"`
	Status string      `xml:"status"`
	IsTied int         `xml:"is_tied"`
	Teams  []teamEntry `xml:"teams>team"`
}

// GetStandings fetches the league's standings resource.
func (c *Client) GetStandings(ctx context.Context, leagueKey string) (*leagueEntry, error) {
	url := fmt.Sprintf("%s/league/%s/standings", c.baseURL, leagueKey)
	return c.getLeague(ctx, url)
}

// GetScoreboard fetches the matchups for a single week.
func (c *Client) GetScoreboard(ctx context.Context, leagueKey string, week int) (*leagueEntry, error) {
	url := fmt.Sprintf("%s/league/%s/scoreboard;week=%d", c.baseURL, leagueKey, week)
	return c.getLeague(ctx, url)
}

func (c *Client) getLeague(ctx context.Context, url string) (*leagueEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
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

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("Yahoo API token rejected: status=%d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Yahoo API error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var content fantasyContent
	if err := xml.Unmarshal(respBody, &content); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &content.League, nil
}
