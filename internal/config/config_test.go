package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Rules.StrictCapacity || cfg.Rules.FloorLineCap != 0 || cfg.Rules.FirstPlayerMarker {
		t.Fatalf("rules defaults = %+v, want the observed ruleset", cfg.Rules)
	}
	if cfg.Bot != DefaultBotWeights() {
		t.Fatalf("bot weights = %+v, want defaults", cfg.Bot)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azul.json")
	body := `{"log":{"level":"debug"},"rules":{"strictCapacity":true,"floorLineCap":7},"bot":{"wOverflow":-40}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.Rules.StrictCapacity || cfg.Rules.FloorLineCap != 7 {
		t.Fatalf("rules = %+v", cfg.Rules)
	}
	if cfg.Bot.WOverflow != -40 {
		t.Fatalf("wOverflow = %d, want -40", cfg.Bot.WOverflow)
	}
	// Values absent from the file keep their defaults.
	if cfg.Bot.WStage != DefaultBotWeights().WStage {
		t.Fatalf("wStage = %d, want default", cfg.Bot.WStage)
	}

	rules := cfg.Rules.Domain()
	if !rules.StrictCapacity || rules.FloorLineCap != 7 || rules.FirstPlayerMarker {
		t.Fatalf("domain rules = %+v", rules)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("Load of a missing file should fail")
	}
}
