package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SCORES_GAMES_BASE_URL", "SCORES_LINES_BASE_URL", "SCORES_INIT_BASE_URL",
		"N8N_WEBHOOK_URL", "N8N_AI_AGENT_WEBHOOK_URL", "SCORES_LANG",
		"SUGGEST_MAX_GAMES", "SUGGEST_FANOUT_LIMIT", "SUGGEST_GAMES_COUNT", "SUGGEST_MARKETS_COUNT",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Lang != 1 || cfg.MaxGames != 10 || cfg.FanoutLimit != 5 {
		t.Errorf("numeric defaults wrong: %+v", cfg)
	}
	if cfg.RecommendedGames != 5 || cfg.RecommendedMarkets != 5 {
		t.Errorf("recommendation defaults wrong: %+v", cfg)
	}
	if cfg.WebhookURL != "" || cfg.AgentWebhookURL != "" {
		t.Errorf("webhook URLs should default to empty: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("N8N_AI_AGENT_WEBHOOK_URL", "https://n8n.example/webhook/agent")
	t.Setenv("SUGGEST_MAX_GAMES", "3")
	t.Setenv("SUGGEST_FANOUT_LIMIT", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8081" {
		t.Errorf("bare PORT should become a listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.AgentWebhookURL != "https://n8n.example/webhook/agent" {
		t.Errorf("AgentWebhookURL = %q", cfg.AgentWebhookURL)
	}
	if cfg.MaxGames != 3 {
		t.Errorf("MaxGames = %d", cfg.MaxGames)
	}
	if cfg.FanoutLimit != 5 {
		t.Errorf("unparseable int should keep the default, got %d", cfg.FanoutLimit)
	}
}

func TestLoadFileThenEnvWins(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen_addr: \":9000\"\nlang: 2\nwebhook_url: https://n8n.example/webhook/base\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("SCORES_LANG", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("file value ignored, ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.WebhookURL != "https://n8n.example/webhook/base" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
	if cfg.Lang != 3 {
		t.Errorf("env should override file, Lang = %d", cfg.Lang)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit config path that does not exist must error")
	}
}
