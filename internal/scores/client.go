package scores

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/betbot/betsuggest/internal/domain"
	"github.com/betbot/betsuggest/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Config holds the upstream base URLs. The games catalog, bet lines and Init
// (taxonomy) endpoints live on different hosts in some environments, so each
// gets its own base.
type Config struct {
	GamesBaseURL string
	LinesBaseURL string
	InitBaseURL  string
	Timeout      time.Duration
}

// Client talks to the 365scores data APIs. One network call per method
// invocation; no batching, no retries.
type Client struct {
	games *resty.Client
	lines *resty.Client
	init  *resty.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		games: newResty(cfg.GamesBaseURL, cfg.Timeout),
		lines: newResty(cfg.LinesBaseURL, cfg.Timeout),
		init:  newResty(cfg.InitBaseURL, cfg.Timeout),
	}
}

func newResty(base string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// gamesResponse is the slice of the catalog payload we care about.
type gamesResponse struct {
	LastUpdateID int64          `json:"LastUpdateID"`
	Games        []externalGame `json:"Games"`
}

// externalGame mirrors the upstream game object. Comps holds the two
// competitors; the order is home, away.
type externalGame struct {
	ID         int64                `json:"ID"`
	Active     bool                 `json:"Active"`
	IsFinished bool                 `json:"IsFinished"`
	STime      string               `json:"STime"`
	Comps      []externalCompetitor `json:"Comps"`
	Venue      *externalVenue       `json:"Venue"`
}

type externalCompetitor struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
}

type externalVenue struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
}

func (g externalGame) toDomain() domain.Game {
	out := domain.Game{
		ID:         g.ID,
		STime:      g.STime,
		StatusText: domain.GameStatus(g.Active, g.IsFinished),
	}
	if len(g.Comps) >= 1 {
		out.Competitor1 = &domain.Competitor{ID: g.Comps[0].ID, Name: g.Comps[0].Name}
	}
	if len(g.Comps) >= 2 {
		out.Competitor2 = &domain.Competitor{ID: g.Comps[1].ID, Name: g.Comps[1].Name}
	}
	if g.Venue != nil {
		out.Venue = &domain.Venue{ID: g.Venue.ID, Name: g.Venue.Name}
	}
	return out
}

// Games queries the games catalog with the user's filter criteria and returns
// the matching games with competitor and venue details.
func (c *Client) Games(ctx context.Context, prefs domain.UserPreferences, dates domain.DateFilters) ([]domain.Game, error) {
	req := c.games.R().SetContext(ctx)
	if dates.StartDate != "" {
		req.SetQueryParam("startdate", wireDate(dates.StartDate))
	}
	if dates.EndDate != "" {
		req.SetQueryParam("enddate", wireDate(dates.EndDate))
	}
	if len(prefs.SportTypeIDs) > 0 {
		// The catalog accepts a single sport id.
		req.SetQueryParam("Sports", strconv.Itoa(prefs.SportTypeIDs[0]))
	}
	if len(prefs.CompetitionIDs) > 0 {
		req.SetQueryParam("Competitions", joinInts(prefs.CompetitionIDs))
	}
	if len(prefs.CompetitorIDs) > 0 {
		req.SetQueryParam("Competitors", joinInts(prefs.CompetitorIDs))
	}

	logger.Debugf("[scores] GET /Data/Games/ params=%v", req.QueryParam)

	var out gamesResponse
	req.SetResult(&out)
	resp, err := req.Get("/Data/Games/")
	if cerr := checkResponse("Games", resp, err); cerr != nil {
		return nil, cerr
	}

	games := make([]domain.Game, 0, len(out.Games))
	for _, g := range out.Games {
		games = append(games, g.toDomain())
	}
	return games, nil
}

type linesResponse struct {
	LastUpdateID int64            `json:"LastUpdateID"`
	Lines        []domain.BetLine `json:"Lines"`
}

// Lines fetches the raw bet lines for one game. The returned slice may
// contain empty placeholder lines; callers filter them out. uc is the opaque
// upstream context code.
func (c *Client) Lines(ctx context.Context, uc int, gameID int64) (int64, []domain.BetLine, error) {
	logger.Debugf("[scores] GET /Data/Bets/Lines/ uc=%d gameid=%d", uc, gameID)

	var out linesResponse
	resp, err := c.lines.R().
		SetContext(ctx).
		SetQueryParam("uc", strconv.Itoa(uc)).
		SetQueryParam("gameid", strconv.FormatInt(gameID, 10)).
		SetResult(&out).
		Get("/Data/Bets/Lines/")
	if cerr := checkResponse("Bets/Lines", resp, err); cerr != nil {
		return 0, nil, cerr
	}
	return out.LastUpdateID, out.Lines, nil
}

// initResponse carries only the Bets.LineTypes slice of the Init payload.
type initResponse struct {
	Bets struct {
		LineTypes []domain.LineType `json:"LineTypes"`
	} `json:"Bets"`
}

// LineTypes fetches the full market-type taxonomy for a language.
func (c *Client) LineTypes(ctx context.Context, lang int) ([]domain.LineType, error) {
	if lang <= 0 {
		lang = 1
	}
	logger.Debugf("[scores] GET /Data/Init/ lang=%d", lang)

	var out initResponse
	resp, err := c.init.R().
		SetContext(ctx).
		SetQueryParam("lang", strconv.Itoa(lang)).
		SetResult(&out).
		Get("/Data/Init/")
	if cerr := checkResponse("Init", resp, err); cerr != nil {
		return nil, cerr
	}
	return out.Bets.LineTypes, nil
}

func checkResponse(api string, resp *resty.Response, err error) error {
	if err != nil {
		return &UnreachableError{API: api, Err: err}
	}
	if resp.IsError() {
		return &ProviderError{API: api, Status: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}
	return nil
}

// wireDate converts dd-mm-yyyy to the dd/mm/yyyy format the catalog expects.
func wireDate(d string) string {
	return strings.ReplaceAll(d, "-", "/")
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
