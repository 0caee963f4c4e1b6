package suggest

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/betbot/betsuggest/internal/domain"
	"github.com/betbot/betsuggest/pkg/logger"
)

// ucContextCode is the opaque context code the bet-line queries use.
const ucContextCode = 21

// ScoresAPI is the slice of the upstream client the pipeline needs.
type ScoresAPI interface {
	Games(ctx context.Context, prefs domain.UserPreferences, dates domain.DateFilters) ([]domain.Game, error)
	Lines(ctx context.Context, uc int, gameID int64) (int64, []domain.BetLine, error)
}

// Dispatcher delivers payloads to the downstream recommendation engine.
type Dispatcher interface {
	SendToAgent(ctx context.Context, payload any) (json.RawMessage, error)
	SendSuggestions(ctx context.Context, payload any) (json.RawMessage, error)
}

// Taxonomy provides the cached market-type set.
type Taxonomy interface {
	Get() []domain.LineType
}

// Config tunes the pipeline.
type Config struct {
	// MaxGames caps how many catalog games enter the bet-line fan-out.
	MaxGames int
	// FanoutLimit bounds concurrent bet-line fetches within one request.
	FanoutLimit int
	// RecommendedGames / RecommendedMarkets are formatted into the agent
	// instruction; the engine, not this service, applies them.
	RecommendedGames   int
	RecommendedMarkets int
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.MaxGames <= 0 {
		out.MaxGames = 10
	}
	if out.FanoutLimit <= 0 {
		out.FanoutLimit = 5
	}
	if out.RecommendedGames <= 0 {
		out.RecommendedGames = 5
	}
	if out.RecommendedMarkets <= 0 {
		out.RecommendedMarkets = 5
	}
	return out
}

// Query carries the optional request parameters. They are logged for
// diagnostics; the pipeline itself does not use them yet.
type Query struct {
	EntityID   string
	EntityType string
	Lang       string
}

// Service runs the suggestion pipeline: games catalog -> per-game bet-line
// fan-out -> whitelist filter + taxonomy join -> agent payload -> webhook.
type Service struct {
	scores     ScoresAPI
	taxonomy   Taxonomy
	dispatcher Dispatcher
	cfg        Config
}

func NewService(scores ScoresAPI, taxonomy Taxonomy, dispatcher Dispatcher, cfg Config) *Service {
	return &Service{
		scores:     scores,
		taxonomy:   taxonomy,
		dispatcher: dispatcher,
		cfg:        cfg.withDefaults(),
	}
}

// GameSuggestions runs the full pipeline for one user and returns the
// engine's response unmodified. Any stage failure aborts the request.
func (s *Service) GameSuggestions(ctx context.Context, userID string, q Query) (json.RawMessage, error) {
	logger.WithFields(map[string]interface{}{
		"userId":     userID,
		"entityId":   q.EntityID,
		"entityType": q.EntityType,
		"lang":       q.Lang,
	}).Info("games-bets-suggestions request")

	prefs := mockUserPreferences
	prefs.UserID = userID

	games, err := s.scores.Games(ctx, prefs, mockDateFilters)
	if err != nil {
		return nil, err
	}
	if len(games) > s.cfg.MaxGames {
		games = games[:s.cfg.MaxGames]
	}
	logger.Infof("games catalog returned %d games for the fan-out", len(games))

	byGame, err := s.fetchLines(ctx, games)
	if err != nil {
		return nil, err
	}

	filteredLines, filteredTypes := Filter(byGame, s.taxonomy.Get())
	logger.Infof("filtered to %d game entries, %d line types", len(filteredLines), len(filteredTypes))

	instruction := BuildInstruction(s.cfg.RecommendedGames, s.cfg.RecommendedMarkets)
	payload := BuildAgentPayload(instruction, filteredLines, filteredTypes)

	return s.dispatcher.SendToAgent(ctx, payload)
}

// fetchLines fans out one bet-line fetch per game, bounded by FanoutLimit.
// All-or-nothing join: the first failure cancels the remaining fetches and
// aborts the batch, so filtering never runs on partial results. Results keep
// the catalog's game order.
func (s *Service) fetchLines(ctx context.Context, games []domain.Game) ([]GameLines, error) {
	byGame := make([]GameLines, len(games))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FanoutLimit)
	for i, game := range games {
		i, game := i, game
		g.Go(func() error {
			lastUpdate, lines, err := s.scores.Lines(gctx, ucContextCode, game.ID)
			if err != nil {
				return err
			}
			logger.Debugf("game %d: %d raw lines (lastUpdateID=%d)", game.ID, len(lines), lastUpdate)
			byGame[i] = GameLines{GameID: game.ID, Lines: lines}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return byGame, nil
}

// GenerateSuggestions is the simpler legacy flow: it packages mock sports
// data for the user and forwards it to the base n8n webhook.
func (s *Service) GenerateSuggestions(ctx context.Context, userID string, filters map[string]any) (json.RawMessage, error) {
	if filters == nil {
		filters = map[string]any{}
	}
	payload := N8nPayload{
		UserID:     userID,
		SportsData: mockSportsData(),
		Filters:    filters,
	}
	return s.dispatcher.SendSuggestions(ctx, payload)
}
