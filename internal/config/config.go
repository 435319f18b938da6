package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"azul/internal/domain"
)

// Config is the full runtime configuration: logging, ruleset variant and
// bot heuristic weights.
type Config struct {
	Log   LogConf    `mapstructure:"log"`
	Rules RulesConf  `mapstructure:"rules"`
	Bot   BotWeights `mapstructure:"bot"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// RulesConf mirrors domain.Rules in configuration form.
type RulesConf struct {
	StrictCapacity    bool `mapstructure:"strictCapacity"`
	FloorLineCap      int  `mapstructure:"floorLineCap"`
	FirstPlayerMarker bool `mapstructure:"firstPlayerMarker"`
}

// BotWeights tunes the greedy bot's move scoring.
type BotWeights struct {
	// WStage is awarded per tile staged on a pattern line.
	WStage int `mapstructure:"wStage"`
	// WComplete is awarded when a move fills its line exactly.
	WComplete int `mapstructure:"wComplete"`
	// WOverflow is charged per tile that spills to the floor line.
	WOverflow int `mapstructure:"wOverflow"`
	// WWallProgress is awarded per tile already on the target row's wall.
	WWallProgress int `mapstructure:"wWallProgress"`
}

// Domain converts the configured ruleset to its domain form.
func (r RulesConf) Domain() domain.Rules {
	return domain.Rules{
		StrictCapacity:    r.StrictCapacity,
		FloorLineCap:      r.FloorLineCap,
		FirstPlayerMarker: r.FirstPlayerMarker,
	}
}

// DefaultBotWeights are the tuned defaults for the greedy bot.
func DefaultBotWeights() BotWeights {
	return BotWeights{
		WStage:        10,
		WComplete:     60,
		WOverflow:     -25,
		WWallProgress: 5,
	}
}

// Load reads configuration from the given file (optional) with AZUL_*
// environment overrides on top of code defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("rules.strictCapacity", false)
	v.SetDefault("rules.floorLineCap", 0)
	v.SetDefault("rules.firstPlayerMarker", false)

	defaults := DefaultBotWeights()
	v.SetDefault("bot.wStage", defaults.WStage)
	v.SetDefault("bot.wComplete", defaults.WComplete)
	v.SetDefault("bot.wOverflow", defaults.WOverflow)
	v.SetDefault("bot.wWallProgress", defaults.WWallProgress)

	v.SetEnvPrefix("AZUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
