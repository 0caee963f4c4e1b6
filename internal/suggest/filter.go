package suggest

import "github.com/betbot/betsuggest/internal/domain"

// Whitelists for the suggestion pipeline. A bet line survives only when its
// bookmaker AND its market type are both allowed; a taxonomy entry survives
// when its id is an allowed market type. Fixed for the life of the process.
var (
	allowedBookmakers = map[int]struct{}{
		161: {}, 14: {}, 53: {}, 139: {}, 174: {}, 156: {},
	}
	allowedLineTypes = map[int]struct{}{
		144: {}, 145: {}, 3: {}, 14: {}, 1: {}, 12: {}, 137: {},
	}
)

// GameLines pairs a game id with its bet lines, in upstream order.
type GameLines struct {
	GameID int64            `json:"gameId"`
	Lines  []domain.BetLine `json:"Lines"`
}

// Filter applies the whitelist intersection to every game's lines and,
// independently, to the taxonomy set.
//
// Empty placeholder lines are dropped unconditionally. Surviving lines keep
// their upstream order. Every input game appears in the output, even when all
// of its lines were filtered out. The taxonomy is filtered once for the whole
// batch, not per game.
func Filter(byGame []GameLines, lineTypes []domain.LineType) ([]GameLines, []domain.LineType) {
	filtered := make([]GameLines, 0, len(byGame))
	for _, item := range byGame {
		kept := make([]domain.BetLine, 0, len(item.Lines))
		for _, line := range item.Lines {
			if !line.Populated() {
				continue
			}
			if _, ok := allowedBookmakers[line.BMID]; !ok {
				continue
			}
			if _, ok := allowedLineTypes[line.Type]; !ok {
				continue
			}
			kept = append(kept, line)
		}
		filtered = append(filtered, GameLines{GameID: item.GameID, Lines: kept})
	}

	types := make([]domain.LineType, 0, len(lineTypes))
	for _, lt := range lineTypes {
		if _, ok := allowedLineTypes[lt.ID]; ok {
			types = append(types, lt)
		}
	}

	return filtered, types
}
