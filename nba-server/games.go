package main

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside/nba-stats-mcp/internal/fault"
)

// GameScoresArgs is the input schema for get_game_scores.
type GameScoresArgs struct {
	Date string `json:"date" jsonschema:"Date in YYYY-MM-DD format; leave empty for today's games/live scores"`
}

// BoxScoreArgs is the input schema for get_box_score.
type BoxScoreArgs struct {
	GameID          string `json:"game_id" jsonschema:"NBA game ID from get_game_scores or game logs, e.g. 0022500001 (required)"`
	IncludeAdvanced bool   `json:"include_advanced" jsonschema:"Also include advanced stats (ratings, usage, pace)"`
}

// scoreboardDatasets names the positional datasets of the scoreboard
// endpoint.
var scoreboardDatasets = []string{
	"game_header", "line_score", "series_standings",
	"last_meeting", "east_conf_standings_by_day",
	"west_conf_standings_by_day", "available",
}

// buildGameScores returns the scoreboard datasets for one date, defaulting
// to today.
func buildGameScores(ctx context.Context, cfg ServerConfig, args GameScoresArgs) (map[string][]map[string]any, error) {
	date := args.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	tables, err := cfg.Client.Scoreboard(ctx, date)
	if err != nil {
		return nil, fault.WrapOp("get game scores", err)
	}
	return namedDatasets(tables, scoreboardDatasets, 50), nil
}

// buildBoxScore returns player and team lines for one game; with
// include_advanced it makes a second rate-gated call for the advanced
// tables.
func buildBoxScore(ctx context.Context, cfg ServerConfig, args BoxScoreArgs) (map[string][]map[string]any, error) {
	if args.GameID == "" {
		return nil, fmt.Errorf("game_id is required")
	}
	tables, err := cfg.Client.BoxScoreTraditional(ctx, args.GameID)
	if err != nil {
		return nil, fault.WrapOp("get box score", err)
	}
	result := make(map[string][]map[string]any)
	if t := tableAt(tables, 0); !t.Empty() {
		result["player_stats"] = shapedRecords(t, 50)
	}
	if t := tableAt(tables, 1); !t.Empty() {
		result["team_stats"] = shapedRecords(t, defaultMaxRows)
	}

	if args.IncludeAdvanced {
		adv, err := cfg.Client.BoxScoreAdvanced(ctx, args.GameID)
		if err != nil {
			return nil, fault.WrapOp("get box score", err)
		}
		if t := tableAt(adv, 0); !t.Empty() {
			result["player_advanced"] = shapedRecords(t, 50)
		}
		if t := tableAt(adv, 1); !t.Empty() {
			result["team_advanced"] = shapedRecords(t, defaultMaxRows)
		}
	}
	return result, nil
}

func gameScoresHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, GameScoresArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GameScoresArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameScores(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func boxScoreHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, BoxScoreArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args BoxScoreArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildBoxScore(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
