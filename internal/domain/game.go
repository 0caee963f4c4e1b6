package domain

// Competitor identifies one side of a game.
type Competitor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Venue is where a game is played.
type Venue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Game identifies a sporting event from the games catalog.
type Game struct {
	ID          int64       `json:"gameId"`
	Competitor1 *Competitor `json:"competitor1,omitempty"`
	Competitor2 *Competitor `json:"competitor2,omitempty"`
	Venue       *Venue      `json:"venue,omitempty"`
	STime       string      `json:"date,omitempty"`
	StatusText  string      `json:"statusText,omitempty"`
}

const (
	StatusUpcoming = "Upcoming"
	StatusLive     = "Live"
	StatusFinished = "Finished"
)

// GameStatus derives the display status from the upstream activity and
// completion flags. Finished wins over active.
func GameStatus(active, finished bool) string {
	switch {
	case finished:
		return StatusFinished
	case active:
		return StatusLive
	default:
		return StatusUpcoming
	}
}
