package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/courtside/nba-stats-mcp/internal/refdata"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// ServerConfig carries the shared collaborators every tool handler needs.
type ServerConfig struct {
	Client        *statsapi.Client
	Catalog       *refdata.Catalog
	DefaultSeason string
	Logger        zerolog.Logger
}

// FileConfig is the optional YAML config file. Every field overrides a
// built-in default when set.
type FileConfig struct {
	BaseURL        string `yaml:"base_url"`
	RateIntervalMS int    `yaml:"rate_interval_ms"`
	DefaultSeason  string `yaml:"default_season"`
}

// loadFileConfig reads and parses the YAML config at path. An empty path
// returns a zero config.
func loadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// RateInterval returns the configured gate interval, or d when unset.
func (fc FileConfig) RateInterval(d time.Duration) time.Duration {
	if fc.RateIntervalMS > 0 {
		return time.Duration(fc.RateIntervalMS) * time.Millisecond
	}
	return d
}

// defaultSeason is the season assumed when a tool call leaves it blank.
const defaultSeason = "2025-26"

// Closed parameter sets. An out-of-set value is rejected before the
// provider is called.
var (
	seasonTypes        = []string{"Regular Season", "Playoffs"}
	perModes           = []string{"PerGame", "Totals", "Per36"}
	leaderPerModes     = []string{"PerGame", "Totals", "Per48"}
	leaguePerModes     = []string{"PerGame", "Totals", "Per36", "Per48"}
	splitMeasureTypes  = []string{"Base", "Advanced", "Misc", "Scoring", "Usage"}
	leagueMeasureTypes = []string{"Base", "Advanced", "Misc", "Scoring", "Usage", "Defense", "Four Factors", "Opponent"}
	leaderStats        = []string{"PTS", "AST", "REB", "STL", "BLK", "FG_PCT", "FT_PCT", "FG3M", "EFF", "MIN"}
	advancedStatTypes  = []string{"tracking", "hustle", "defense", "playtype"}
	ptMeasureTypes     = []string{"SpeedDistance", "Drives", "Passing", "Possessions", "CatchShoot", "PullUpShoot", "Rebounding", "Defense", "Efficiency", "ElbowTouch", "PostTouch", "PaintTouch"}
	defenseCategories  = []string{"Overall", "3 Pointers", "2 Pointers", "Less Than 6Ft", "Greater Than 15Ft"}
	playTypes          = []string{"Isolation", "Transition", "PRBallHandler", "PRRollman", "Postup", "Spotup", "Handoff", "Cut", "OffScreen", "OffRebound"}
)

// season returns s or the configured default.
func (cfg ServerConfig) season(s string) string {
	if s == "" {
		return cfg.DefaultSeason
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
