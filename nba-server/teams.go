package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside/nba-stats-mcp/internal/fault"
	"github.com/courtside/nba-stats-mcp/internal/refdata"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// SearchTeamsArgs is the input schema for search_teams.
type SearchTeamsArgs struct {
	Query string `json:"query" jsonschema:"Team name, abbreviation, or city, e.g. Lakers, LAL, Los Angeles (required)"`
}

// TeamStatsArgs is the input schema for get_team_stats.
type TeamStatsArgs struct {
	Team       string `json:"team" jsonschema:"Team name, abbreviation, or city (required)"`
	PerMode    string `json:"per_mode" jsonschema:"PerGame, Totals, or Per36 (default PerGame)"`
	SeasonType string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
}

// TeamGameLogArgs is the input schema for get_team_game_log.
type TeamGameLogArgs struct {
	Team       string `json:"team" jsonschema:"Team name, abbreviation, or city (required)"`
	Season     string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	SeasonType string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
	DateFrom   string `json:"date_from" jsonschema:"Filter start date MM/DD/YYYY (optional)"`
	DateTo     string `json:"date_to" jsonschema:"Filter end date MM/DD/YYYY (optional)"`
}

// TeamRosterArgs is the input schema for get_team_roster.
type TeamRosterArgs struct {
	Team   string `json:"team" jsonschema:"Team name, abbreviation, or city (required)"`
	Season string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
}

// buildSearchTeams resolves a free-text team query. Zero matches is
// NotFound so the caller knows to reword rather than treat the team as
// having no data.
func buildSearchTeams(args SearchTeamsArgs) ([]refdata.TeamMatch, error) {
	if args.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	matches := refdata.ResolveTeams(args.Query)
	if len(matches) == 0 {
		return nil, &fault.NotFound{Kind: "team", Query: args.Query}
	}
	return matches, nil
}

// buildTeamStats returns year-by-year franchise stats.
func buildTeamStats(ctx context.Context, cfg ServerConfig, args TeamStatsArgs) ([]map[string]any, error) {
	if args.Team == "" {
		return nil, fmt.Errorf("team is required")
	}
	perMode := orDefault(args.PerMode, "PerGame")
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("per_mode", perMode, perModes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	teamID, err := refdata.TeamID(args.Team)
	if err != nil {
		return nil, err
	}
	tables, err := cfg.Client.TeamYearByYearStats(ctx, teamID, perMode, seasonType)
	if err != nil {
		return nil, fault.WrapOp("get team stats", err)
	}
	return shapedRecords(tableAt(tables, 0), 100), nil
}

// buildTeamGameLog returns per-game results for one team season.
func buildTeamGameLog(ctx context.Context, cfg ServerConfig, args TeamGameLogArgs) ([]map[string]any, error) {
	if args.Team == "" {
		return nil, fmt.Errorf("team is required")
	}
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	teamID, err := refdata.TeamID(args.Team)
	if err != nil {
		return nil, err
	}
	tables, err := cfg.Client.TeamGameLog(ctx, teamID, statsapi.GameLogFilter{
		Season:     cfg.season(args.Season),
		SeasonType: seasonType,
		DateFrom:   args.DateFrom,
		DateTo:     args.DateTo,
	})
	if err != nil {
		return nil, fault.WrapOp("get team game log", err)
	}
	return shapedRecords(tableAt(tables, 0), defaultMaxRows), nil
}

// buildTeamRoster returns players and coaches for a team season.
func buildTeamRoster(ctx context.Context, cfg ServerConfig, args TeamRosterArgs) (map[string][]map[string]any, error) {
	if args.Team == "" {
		return nil, fmt.Errorf("team is required")
	}
	teamID, err := refdata.TeamID(args.Team)
	if err != nil {
		return nil, err
	}
	tables, err := cfg.Client.TeamRoster(ctx, teamID, cfg.season(args.Season))
	if err != nil {
		return nil, fault.WrapOp("get team roster", err)
	}
	return namedDatasets(tables, []string{"players", "coaches"}, defaultMaxRows), nil
}

func searchTeamsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, SearchTeamsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchTeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSearchTeams(args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func teamStatsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, TeamStatsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamStats(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func teamGameLogHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, TeamGameLogArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamGameLogArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamGameLog(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func teamRosterHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, TeamRosterArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamRosterArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamRoster(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
