package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup. Values are resolved
// env-first with an optional YAML file underneath (env > file > default).
// The webhook URLs may legitimately be empty here: a missing webhook address
// is a per-request dispatch error, not a startup failure.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	// Upstream 365scores API base URLs.
	GamesBaseURL string `yaml:"games_base_url"`
	LinesBaseURL string `yaml:"lines_base_url"`
	InitBaseURL  string `yaml:"init_base_url"`

	// n8n webhook addresses: the plain suggestion webhook and the AI-agent one.
	WebhookURL      string `yaml:"webhook_url"`
	AgentWebhookURL string `yaml:"agent_webhook_url"`

	// Lang is the language id used for the startup taxonomy load.
	Lang int `yaml:"lang"`

	// MaxGames caps how many games from the catalog enter the bet-line fan-out.
	MaxGames int `yaml:"max_games"`
	// FanoutLimit bounds concurrent bet-line fetches within one request.
	FanoutLimit int `yaml:"fanout_limit"`

	// Recommendation counts formatted into the AI-agent instruction.
	RecommendedGames   int `yaml:"recommended_games"`
	RecommendedMarkets int `yaml:"recommended_markets"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load resolves the configuration. filePath may be empty; a missing file is
// only an error when the path was given explicitly.
func Load(filePath string) (*Config, error) {
	cfg := defaults()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", filePath)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", filePath)
		}
	}

	cfg.applyEnv()

	if cfg.FanoutLimit <= 0 {
		cfg.FanoutLimit = 5
	}
	if cfg.MaxGames <= 0 {
		cfg.MaxGames = 10
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ListenAddr:         ":3000",
		GamesBaseURL:       "http://test.365scores.com",
		LinesBaseURL:       "https://ws.365scores.com",
		InitBaseURL:        "http://test.365scores.com",
		Lang:               1,
		MaxGames:           10,
		FanoutLimit:        5,
		RecommendedGames:   5,
		RecommendedMarkets: 5,
		LogLevel:           "info",
		LogFile:            "logs/server.log",
	}
}

func (c *Config) applyEnv() {
	if v := getenv("PORT"); v != "" {
		// The original deployment configures a bare port number.
		if strings.Contains(v, ":") {
			c.ListenAddr = v
		} else {
			c.ListenAddr = ":" + v
		}
	}
	setString(&c.GamesBaseURL, "SCORES_GAMES_BASE_URL")
	setString(&c.LinesBaseURL, "SCORES_LINES_BASE_URL")
	setString(&c.InitBaseURL, "SCORES_INIT_BASE_URL")
	setString(&c.WebhookURL, "N8N_WEBHOOK_URL")
	setString(&c.AgentWebhookURL, "N8N_AI_AGENT_WEBHOOK_URL")
	setInt(&c.Lang, "SCORES_LANG")
	setInt(&c.MaxGames, "SUGGEST_MAX_GAMES")
	setInt(&c.FanoutLimit, "SUGGEST_FANOUT_LIMIT")
	setInt(&c.RecommendedGames, "SUGGEST_GAMES_COUNT")
	setInt(&c.RecommendedMarkets, "SUGGEST_MARKETS_COUNT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFile, "LOG_FILE")
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
