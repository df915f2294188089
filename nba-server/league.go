package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside/nba-stats-mcp/internal/fault"
	"github.com/courtside/nba-stats-mcp/internal/shape"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// StandingsArgs is the input schema for get_standings.
type StandingsArgs struct {
	Season     string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	SeasonType string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
}

// LeagueLeadersArgs is the input schema for get_league_leaders.
type LeagueLeadersArgs struct {
	Stat       string `json:"stat" jsonschema:"Stat category to rank by: PTS, AST, REB, STL, BLK, FG_PCT, FT_PCT, FG3M, EFF, MIN (default PTS)"`
	Season     string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	PerMode    string `json:"per_mode" jsonschema:"PerGame, Totals, or Per48 (default PerGame)"`
	SeasonType string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
	TopN       int    `json:"top_n" jsonschema:"Number of leaders to return (default 25, max 100)"`
}

// LeaguePlayerStatsArgs is the input schema for get_league_player_stats —
// the most flexible stat tool, for questions like "best scoring forwards
// from Duke" or "bench players with most assists in January".
type LeaguePlayerStatsArgs struct {
	Season         string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	MeasureType    string `json:"measure_type" jsonschema:"Base, Advanced, Misc, Scoring, Usage, Defense, Four Factors, or Opponent (default Base)"`
	PerMode        string `json:"per_mode" jsonschema:"PerGame, Totals, Per36, or Per48 (default PerGame)"`
	SeasonType     string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
	PlayerPosition string `json:"player_position" jsonschema:"Filter by position: F, C, G, or empty for all"`
	Conference     string `json:"conference" jsonschema:"East, West, or empty for all"`
	Division       string `json:"division" jsonschema:"Atlantic, Central, Southeast, Northwest, Pacific, Southwest, or empty"`
	StarterBench   string `json:"starter_bench" jsonschema:"Starters, Bench, or empty for all"`
	Experience     string `json:"player_experience" jsonschema:"Rookie, Sophomore, Veteran, or empty for all"`
	College        string `json:"college" jsonschema:"College name filter, e.g. Duke, Kentucky"`
	Country        string `json:"country" jsonschema:"Country filter, e.g. USA, France, Serbia"`
	DraftYear      string `json:"draft_year" jsonschema:"Draft year filter, e.g. 2020"`
	DraftPick      string `json:"draft_pick" jsonschema:"1st Round, 2nd Round, 1st Pick, Lottery, Undrafted, or empty"`
	Height         string `json:"height" jsonschema:"Height filter, e.g. GT 6-10, LT 6-2"`
	Weight         string `json:"weight" jsonschema:"Weight filter, e.g. GT 250, LT 200"`
	LastNGames     int    `json:"last_n_games" jsonschema:"Only consider last N games (0 = full season)"`
	Month          int    `json:"month" jsonschema:"Month number 1-12 (0 = all months)"`
	OpponentTeamID int    `json:"opponent_team_id" jsonschema:"Filter by opponent team ID (0 = all opponents)"`
	Outcome        string `json:"outcome" jsonschema:"W for wins only, L for losses only, empty for all"`
	Location       string `json:"location" jsonschema:"Home, Road, or empty for all"`
	ShotClockRange string `json:"shot_clock_range" jsonschema:"e.g. 24-22, 22-18 Very Early, 15-7 Average, 4-0 Very Late"`
	TopN           int    `json:"top_n" jsonschema:"Number of players to return (default 75, max 200)"`
}

// buildStandings returns the full standings table (30 teams).
func buildStandings(ctx context.Context, cfg ServerConfig, args StandingsArgs) ([]map[string]any, error) {
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	tables, err := cfg.Client.Standings(ctx, cfg.season(args.Season), seasonType)
	if err != nil {
		return nil, fault.WrapOp("get standings", err)
	}
	return shapedRecords(tableAt(tables, 0), 30), nil
}

// buildLeagueLeaders returns the top N players by one stat, highest first.
// The provider usually pre-sorts, but the shaping pass re-sorts by the
// requested category so ordering never depends on upstream behavior.
func buildLeagueLeaders(ctx context.Context, cfg ServerConfig, args LeagueLeadersArgs) ([]map[string]any, error) {
	stat := orDefault(args.Stat, "PTS")
	perMode := orDefault(args.PerMode, "PerGame")
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("stat", stat, leaderStats...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("per_mode", perMode, leaderPerModes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	topN := args.TopN
	if topN == 0 {
		topN = 25
	}
	topN = shape.ClampRows(topN, 1, 100)

	tables, err := cfg.Client.LeagueLeaders(ctx, stat, cfg.season(args.Season), perMode, seasonType)
	if err != nil {
		return nil, fault.WrapOp("get league leaders", err)
	}
	shaped := shape.Apply(tableAt(tables, 0), shape.Options{
		SortBy:  stat,
		MaxRows: topN,
	})
	return shaped.Records(0), nil
}

// buildLeaguePlayerStats returns the filtered league-wide dashboard with
// ID and RANK columns dropped to keep the payload inside the output
// budget.
func buildLeaguePlayerStats(ctx context.Context, cfg ServerConfig, args LeaguePlayerStatsArgs) ([]map[string]any, error) {
	measureType := orDefault(args.MeasureType, "Base")
	perMode := orDefault(args.PerMode, "PerGame")
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("measure_type", measureType, leagueMeasureTypes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("per_mode", perMode, leaguePerModes...); err != nil {
		return nil, err
	}
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}
	topN := args.TopN
	if topN == 0 {
		topN = 75
	}
	topN = shape.ClampRows(topN, 1, 200)

	tables, err := cfg.Client.LeaguePlayerStats(ctx, statsapi.LeaguePlayerStatsFilter{
		Season:         cfg.season(args.Season),
		MeasureType:    measureType,
		PerMode:        perMode,
		SeasonType:     seasonType,
		PlayerPosition: args.PlayerPosition,
		Conference:     args.Conference,
		Division:       args.Division,
		StarterBench:   args.StarterBench,
		Experience:     args.Experience,
		College:        args.College,
		Country:        args.Country,
		DraftYear:      args.DraftYear,
		DraftPick:      args.DraftPick,
		Height:         args.Height,
		Weight:         args.Weight,
		LastNGames:     args.LastNGames,
		Month:          args.Month,
		OpponentTeamID: args.OpponentTeamID,
		Outcome:        args.Outcome,
		Location:       args.Location,
		ShotClockRange: args.ShotClockRange,
	})
	if err != nil {
		return nil, fault.WrapOp("get league player stats", err)
	}
	shaped := shape.Apply(tableAt(tables, 0), shape.Options{
		DropRanks: true,
		MaxRows:   topN,
	})
	return shaped.Records(0), nil
}

func standingsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, StandingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args StandingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStandings(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func leagueLeadersHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, LeagueLeadersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueLeadersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueLeaders(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

func leaguePlayerStatsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, LeaguePlayerStatsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeaguePlayerStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeaguePlayerStats(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
