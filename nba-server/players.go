package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside/nba-stats-mcp/internal/fault"
	"github.com/courtside/nba-stats-mcp/internal/refdata"
	"github.com/courtside/nba-stats-mcp/internal/shape"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// maxPlayerMatches caps search_players output; the full historical list
// matches thousands of players on short queries.
const maxPlayerMatches = 25

// SearchPlayersArgs is the input schema for search_players.
type SearchPlayersArgs struct {
	Query string `json:"query" jsonschema:"Player name to search for, e.g. Curry, LeBron, Giannis (required)"`
}

// PlayerInfoArgs is the input schema for get_player_info.
type PlayerInfoArgs struct {
	PlayerID string `json:"player_id" jsonschema:"NBA player ID (use search_players to find this)"`
}

// PlayerStatsArgs is the input schema for get_player_stats.
type PlayerStatsArgs struct {
	PlayerID string `json:"player_id" jsonschema:"NBA player ID (required)"`
	PerMode  string `json:"per_mode" jsonschema:"Stat mode: PerGame, Totals, or Per36 (default PerGame)"`
}

// PlayerGameLogArgs is the input schema for get_player_game_log.
type PlayerGameLogArgs struct {
	PlayerID   string `json:"player_id" jsonschema:"NBA player ID (required)"`
	Season     string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	SeasonType string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
	DateFrom   string `json:"date_from" jsonschema:"Filter start date MM/DD/YYYY (optional)"`
	DateTo     string `json:"date_to" jsonschema:"Filter end date MM/DD/YYYY (optional)"`
}

// PlayerSplitsArgs is the input schema for get_player_splits.
type PlayerSplitsArgs struct {
	PlayerID    string `json:"player_id" jsonschema:"NBA player ID (required)"`
	Season      string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	MeasureType string `json:"measure_type" jsonschema:"Base, Advanced, Misc, Scoring, or Usage (default Base)"`
	PerMode     string `json:"per_mode" jsonschema:"PerGame, Totals, or Per36 (default PerGame)"`
	SeasonType  string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
}

// buildSearchPlayers resolves a free-text player query against the
// reference catalog. Zero matches is NotFound, not an empty list — the
// caller should retry with a different spelling.
func buildSearchPlayers(ctx context.Context, cfg ServerConfig, args SearchPlayersArgs) ([]refdata.PlayerMatch, error) {
	if args.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	matches, err := cfg.Catalog.ResolvePlayers(ctx, args.Query)
	if err != nil {
		return nil, fault.WrapOp("search players", err)
	}
	if len(matches) == 0 {
		return nil, &fault.NotFound{Kind: "player", Query: args.Query}
	}
	if len(matches) > maxPlayerMatches {
		matches = matches[:maxPlayerMatches]
	}
	return matches, nil
}

// buildPlayerInfo returns bio and headline stats, each a single record.
func buildPlayerInfo(ctx context.Context, cfg ServerConfig, args PlayerInfoArgs) (map[string]any, error) {
	if args.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	tables, err := cfg.Client.PlayerInfo(ctx, args.PlayerID)
	if err != nil {
		return nil, fault.WrapOp("get player info", err)
	}
	result := make(map[string]any)
	if info := shape.Apply(tableAt(tables, 0), shape.Options{MaxRows: 1}); !info.Empty() {
		result["player_info"] = info.FirstRecord()
	}
	if headline := shape.Apply(tableAt(tables, 1), shape.Options{MaxRows: 1}); !headline.Empty() {
		result["headline_stats"] = headline.FirstRecord()
	}
	return result, nil
}

// careerDatasets names the positional datasets of the career stats
// endpoint.
var careerDatasets = []string{
	"regular_season", "career_regular_season",
	"post_season", "career_post_season",
	"all_star", "career_all_star",
	"college", "career_college",
}

// buildPlayerStats returns season-by-season and career totals grouped by
// dataset name.
func buildPlayerStats(ctx context.Context, cfg ServerConfig, args PlayerStatsArgs) (map[string][]map[string]any, error) {
	if args.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	perMode := orDefault(args.PerMode, "PerGame")
	if err := fault.CheckEnum("per_mode", perMode, perModes...); err != nil {
		return nil, err
	}
	tables, err := cfg.Client.PlayerCareerStats(ctx, args.PlayerID, perMode)
	if err != nil {
		return nil, fault.WrapOp("get player stats", err)
	}
	return namedDatasets(tables, careerDatasets, defaultMaxRows), nil
}

// buildPlayerGameLog returns per-game stat lines for one season.
func buildPlayerGameLog(ctx context.Context, cfg ServerConfig, args PlayerGameLogArgs) ([]map[string]any, error) {
	if args.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	tables, err := cfg.Client.PlayerGameLog(ctx, args.PlayerID, statsapi.GameLogFilter{
		Season:     cfg.season(args.Season),
		SeasonType: seasonType,
		DateFrom:   args.DateFrom,
		DateTo:     args.DateTo,
	})
	if err != nil {
		return nil, fault.WrapOp("get player game log", err)
	}
	return shapedRecords(tableAt(tables, 0), defaultMaxRows), nil
}

// splitDatasets names the positional datasets of the general-splits
// dashboard.
var splitDatasets = []string{
	"overall", "location", "win_loss", "monthly",
	"pre_post_allstar", "days_rest", "starter_bench",
}

// buildPlayerSplits returns split categories grouped by name.
func buildPlayerSplits(ctx context.Context, cfg ServerConfig, args PlayerSplitsArgs) (map[string][]map[string]any, error) {
	if args.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	measureType := orDefault(args.MeasureType, "Base")
	perMode := orDefault(args.PerMode, "PerGame")
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("measure_type", measureType, splitMeasureTypes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("per_mode", perMode, perModes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	tables, err := cfg.Client.PlayerSplits(ctx, args.PlayerID, cfg.season(args.Season), measureType, perMode, seasonType)
	if err != nil {
		return nil, fault.WrapOp("get player splits", err)
	}
	return namedDatasets(tables, splitDatasets, defaultMaxRows), nil
}

func searchPlayersHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, SearchPlayersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchPlayersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSearchPlayers(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func playerInfoHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerInfoArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerInfoArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerInfo(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func playerStatsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerStatsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerStats(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func playerGameLogHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerGameLogArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerGameLogArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerGameLog(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func playerSplitsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerSplitsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerSplitsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerSplits(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
