package domain

// UserPreferences filter the games catalog query: which sports, competitions
// and competitors a user follows. All filter lists are optional.
type UserPreferences struct {
	UserID         string
	SportTypeIDs   []int
	CompetitionIDs []int
	CompetitorIDs  []int
	Lang           int
}

// DateFilters bound the games catalog query. Dates use dd-mm-yyyy; each bound
// is independently defaulted by the upstream provider when omitted.
type DateFilters struct {
	StartDate string
	EndDate   string
}
