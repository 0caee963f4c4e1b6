package scores

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/betbot/betsuggest/internal/domain"
)

func jsonHandler(t *testing.T, capture *url.Values, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestGamesQueryAndMapping(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(jsonHandler(t, &query, `{
		"LastUpdateID": 42,
		"Games": [
			{"ID": 101, "Active": false, "IsFinished": false, "STime": "16-01-2026 19:00",
			 "Comps": [{"ID": 104, "Name": "Arsenal"}, {"ID": 132, "Name": "Chelsea"}],
			 "Venue": {"ID": 9, "Name": "Emirates Stadium"}},
			{"ID": 102, "Active": true, "IsFinished": false, "STime": "15-01-2026 21:00", "Comps": []}
		]
	}`))
	defer srv.Close()

	c := NewClient(Config{GamesBaseURL: srv.URL, LinesBaseURL: srv.URL, InitBaseURL: srv.URL})
	prefs := domain.UserPreferences{
		SportTypeIDs:   []int{1, 2},
		CompetitionIDs: []int{7, 11, 572},
		CompetitorIDs:  []int{104, 132},
	}
	dates := domain.DateFilters{StartDate: "15-01-2026", EndDate: "17-01-2026"}

	games, err := c.Games(context.Background(), prefs, dates)
	if err != nil {
		t.Fatalf("Games: %v", err)
	}

	if got := query.Get("startdate"); got != "15/01/2026" {
		t.Errorf("startdate = %q", got)
	}
	if got := query.Get("enddate"); got != "17/01/2026" {
		t.Errorf("enddate = %q", got)
	}
	if got := query.Get("Sports"); got != "1" {
		t.Errorf("Sports = %q, want first sport id only", got)
	}
	if got := query.Get("Competitions"); got != "7,11,572" {
		t.Errorf("Competitions = %q", got)
	}
	if got := query.Get("Competitors"); got != "104,132" {
		t.Errorf("Competitors = %q", got)
	}

	if len(games) != 2 {
		t.Fatalf("got %d games want 2", len(games))
	}
	g := games[0]
	if g.ID != 101 || g.StatusText != domain.StatusUpcoming {
		t.Errorf("game 101 mapped wrong: %+v", g)
	}
	if g.Competitor1 == nil || g.Competitor1.Name != "Arsenal" {
		t.Errorf("competitor1 wrong: %+v", g.Competitor1)
	}
	if g.Competitor2 == nil || g.Competitor2.Name != "Chelsea" {
		t.Errorf("competitor2 wrong: %+v", g.Competitor2)
	}
	if g.Venue == nil || g.Venue.Name != "Emirates Stadium" {
		t.Errorf("venue wrong: %+v", g.Venue)
	}
	if games[1].StatusText != domain.StatusLive {
		t.Errorf("active game status = %q", games[1].StatusText)
	}
	if games[1].Competitor1 != nil {
		t.Error("missing competitors should stay nil")
	}
}

func TestLinesDecode(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(jsonHandler(t, &query, `{
		"LastUpdateID": 9,
		"Lines": [
			{},
			{"ID": 5, "EntID": 101, "EntT": 1, "Type": 144, "BMID": 161,
			 "Options": [{"Num": 1, "Rate": 2.1, "Fractional": "11/10", "American": "+110", "OriginalRate": 2.1}]}
		]
	}`))
	defer srv.Close()

	c := NewClient(Config{GamesBaseURL: srv.URL, LinesBaseURL: srv.URL, InitBaseURL: srv.URL})
	lastUpdate, lines, err := c.Lines(context.Background(), 21, 101)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}

	if got := query.Get("uc"); got != "21" {
		t.Errorf("uc = %q", got)
	}
	if got := query.Get("gameid"); got != "101" {
		t.Errorf("gameid = %q", got)
	}
	if lastUpdate != 9 {
		t.Errorf("LastUpdateID = %d", lastUpdate)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines want 2", len(lines))
	}
	if lines[0].Populated() {
		t.Error("placeholder line decoded as populated")
	}
	l := lines[1]
	if !l.Populated() || l.BMID != 161 || l.Type != 144 {
		t.Errorf("populated line wrong: %+v", l)
	}
	if len(l.Options) != 1 || l.Options[0].Rate != 2.1 {
		t.Errorf("options wrong: %+v", l.Options)
	}
}

func TestLineTypesUnwrap(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(jsonHandler(t, &query, `{
		"Bets": {"LineTypes": [
			{"ID": 144, "Name": "Over/Under", "Title": "Total Goals"},
			{"ID": 1, "Name": "Full Time Result"}
		]},
		"Sports": []
	}`))
	defer srv.Close()

	c := NewClient(Config{GamesBaseURL: srv.URL, LinesBaseURL: srv.URL, InitBaseURL: srv.URL})
	types, err := c.LineTypes(context.Background(), 0)
	if err != nil {
		t.Fatalf("LineTypes: %v", err)
	}

	if got := query.Get("lang"); got != "1" {
		t.Errorf("lang = %q, want the default 1", got)
	}
	if len(types) != 2 || types[0].ID != 144 || types[1].ID != 1 {
		t.Fatalf("unexpected taxonomy: %+v", types)
	}
	if types[0].Title != "Total Goals" {
		t.Errorf("Title = %q", types[0].Title)
	}
}

func TestProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(Config{GamesBaseURL: srv.URL, LinesBaseURL: srv.URL, InitBaseURL: srv.URL})
	_, err := c.Games(context.Background(), domain.UserPreferences{}, domain.DateFilters{})

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want ProviderError", err)
	}
	if pe.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d", pe.Status)
	}
	if pe.API != "Games" {
		t.Errorf("API = %q", pe.API)
	}
	if !strings.Contains(err.Error(), "returned error: 500 - upstream exploded") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUnreachableError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // nothing listens anymore

	c := NewClient(Config{GamesBaseURL: base, LinesBaseURL: base, InitBaseURL: base})
	_, _, err := c.Lines(context.Background(), 21, 101)

	var ue *UnreachableError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want UnreachableError", err)
	}
	if ue.API != "Bets/Lines" {
		t.Errorf("API = %q", ue.API)
	}
	if !strings.Contains(err.Error(), "no response received") {
		t.Errorf("message = %q", err.Error())
	}
}
