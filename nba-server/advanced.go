package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside/nba-stats-mcp/internal/fault"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// AdvancedStatsArgs is the input schema for get_advanced_stats.
type AdvancedStatsArgs struct {
	StatType        string `json:"stat_type" jsonschema:"Type of advanced stats: tracking, hustle, defense, or playtype (required)"`
	Season          string `json:"season" jsonschema:"Season string, e.g. 2025-26 (default current)"`
	PerMode         string `json:"per_mode" jsonschema:"PerGame or Totals (not used for playtype)"`
	SeasonType      string `json:"season_type" jsonschema:"Regular Season or Playoffs (default Regular Season)"`
	PtMeasureType   string `json:"pt_measure_type" jsonschema:"For tracking only: SpeedDistance, Drives, Passing, Possessions, CatchShoot, PullUpShoot, Rebounding, Defense, Efficiency, ElbowTouch, PostTouch, PaintTouch"`
	DefenseCategory string `json:"defense_category" jsonschema:"For defense only: Overall, 3 Pointers, 2 Pointers, Less Than 6Ft, Greater Than 15Ft"`
	PlayType        string `json:"play_type" jsonschema:"For playtype only: Isolation, Transition, PRBallHandler, PRRollman, Postup, Spotup, Handoff, Cut, OffScreen, OffRebound"`
}

// buildAdvancedStats dispatches to one of four provider endpoints keyed by
// stat_type. An unknown stat_type is rejected up front with the accepted
// set.
func buildAdvancedStats(ctx context.Context, cfg ServerConfig, args AdvancedStatsArgs) ([]map[string]any, error) {
	season := cfg.season(args.Season)
	perMode := orDefault(args.PerMode, "PerGame")
	seasonType := orDefault(args.SeasonType, "Regular Season")
	if err := fault.CheckEnum("season_type", seasonType, seasonTypes...); err != nil {
		return nil, err
	}

	var (
		tables []statsapi.Table
		err    error
	)
	switch args.StatType {
	case "tracking":
		measure := orDefault(args.PtMeasureType, "SpeedDistance")
		if err := fault.CheckEnum("pt_measure_type", measure, ptMeasureTypes...); err != nil {
			return nil, err
		}
		tables, err = cfg.Client.TrackingStats(ctx, season, perMode, seasonType, measure)
	case "hustle":
		tables, err = cfg.Client.HustleStats(ctx, season, perMode, seasonType)
	case "defense":
		category := orDefault(args.DefenseCategory, "Overall")
		if err := fault.CheckEnum("defense_category", category, defenseCategories...); err != nil {
			return nil, err
		}
		tables, err = cfg.Client.DefenseStats(ctx, season, perMode, seasonType, category)
	case "playtype":
		playType := orDefault(args.PlayType, "Isolation")
		if err := fault.CheckEnum("play_type", playType, playTypes...); err != nil {
			return nil, err
		}
		tables, err = cfg.Client.PlayTypeStats(ctx, season, seasonType, playType)
	default:
		return nil, &fault.InvalidArgument{
			Param:    "stat_type",
			Value:    args.StatType,
			Accepted: advancedStatTypes,
		}
	}
	if err != nil {
		return nil, fault.WrapOp("get advanced stats", err)
	}
	return shapedRecords(tableAt(tables, 0), defaultMaxRows), nil
}

func advancedStatsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, AdvancedStatsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args AdvancedStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildAdvancedStats(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
