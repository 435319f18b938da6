package main

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"azul/internal/config"
)

var (
	configFile string
	logLevel   string
	seed       int64

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "azul",
	Short: "azul is a tile-drafting board game engine",
	Long:  "azul plays and simulates matches of a five-color tile-drafting board game.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel == "" {
			logLevel = cfg.Log.Level
		}
		logger = newLogger(logLevel)
		runtimeConfig = cfg
		return nil
	},
}

// runtimeConfig is the loaded configuration shared by the subcommands.
var runtimeConfig *config.Config

func newLogger(level string) *log.Logger {
	l := log.New(os.Stdout)
	l.SetPrefix("azul")
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)

	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "warn":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "rng seed; 0 seeds from the clock")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
