package suggest

import (
	"github.com/shopspring/decimal"

	"github.com/betbot/betsuggest/internal/domain"
)

// Mock filter inputs for the games catalog query. These stand in until a real
// user-preferences source exists; the userId from the request replaces the
// mock one.
var (
	mockDateFilters = domain.DateFilters{
		StartDate: "15-01-2026",
		EndDate:   "17-01-2026",
	}

	mockUserPreferences = domain.UserPreferences{
		UserID:         "12345",
		SportTypeIDs:   []int{1, 2},
		CompetitionIDs: []int{7, 11, 572},
		CompetitorIDs:  []int{104, 132, 134, 108},
		Lang:           1,
	}
)

// SportsOdds is one priced event in the mock sports dataset.
type SportsOdds struct {
	ID    string          `json:"id"`
	Event string          `json:"event"`
	Odds  decimal.Decimal `json:"odds"`
	Sport string          `json:"sport"`
}

// SportsFavorite is one of the user's followed entities.
type SportsFavorite struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SportsData is the mock dataset for the generate-suggestions flow.
type SportsData struct {
	Odds          []SportsOdds     `json:"odds"`
	UserFavorites []SportsFavorite `json:"userFavorites"`
}

// N8nPayload is the body of the plain suggestion webhook.
type N8nPayload struct {
	UserID     string         `json:"userId"`
	SportsData SportsData     `json:"sportsData"`
	Filters    map[string]any `json:"filters"`
}

// mockSportsData returns placeholder odds and favourites. In production this
// would come from a database or an external API.
func mockSportsData() SportsData {
	return SportsData{
		Odds: []SportsOdds{
			{ID: "1", Event: "Manchester United vs Liverpool", Odds: decimal.NewFromFloat(2.5), Sport: "Football"},
			{ID: "2", Event: "Lakers vs Warriors", Odds: decimal.NewFromFloat(1.8), Sport: "Basketball"},
		},
		UserFavorites: []SportsFavorite{
			{ID: "fav1", Name: "Football", Category: "sport"},
			{ID: "fav2", Name: "Premier League", Category: "league"},
		},
	}
}
