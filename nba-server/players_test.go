package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-stats-mcp/internal/fault"
)

func TestBuildSearchPlayers(t *testing.T) {
	cfg, up := testCfg(t, map[string][]byte{
		"/commonallplayers": allPlayersFixture(),
	})

	got, err := buildSearchPlayers(context.Background(), cfg, SearchPlayersArgs{Query: "curry"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Seth Curry", got[0].FullName)
	assert.Equal(t, "Stephen Curry", got[1].FullName)
	assert.Equal(t, "Dell Curry", got[2].FullName)

	// Reference data loads once; a second search must not refetch.
	_, err = buildSearchPlayers(context.Background(), cfg, SearchPlayersArgs{Query: "lebron"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/commonallplayers"}, up.calls)
}

func TestBuildSearchPlayersNotFound(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/commonallplayers": allPlayersFixture(),
	})

	_, err := buildSearchPlayers(context.Background(), cfg, SearchPlayersArgs{Query: "wembanyama"})
	var nf *fault.NotFound
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "wembanyama", nf.Query)
}

func TestBuildSearchPlayersRequiresQuery(t *testing.T) {
	cfg, _ := testCfg(t, nil)
	_, err := buildSearchPlayers(context.Background(), cfg, SearchPlayersArgs{})
	require.Error(t, err)
}

func TestBuildPlayerInfo(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/commonplayerinfo": envelope(
			dataset("CommonPlayerInfo",
				[]string{"PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ID", "TEAM_ABBREVIATION", "POSITION"},
				[]any{201939, "Stephen Curry", 1610612744, "GSW", "Guard"},
			),
			dataset("PlayerHeadlineStats",
				[]string{"PLAYER_ID", "PTS", "AST", "REB"},
				[]any{201939, 24.5, 6.0, 4.4},
			),
		),
	})

	got, err := buildPlayerInfo(context.Background(), cfg, PlayerInfoArgs{PlayerID: "201939"})
	require.NoError(t, err)

	info, ok := got["player_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Stephen Curry", info["DISPLAY_FIRST_LAST"])
	// High-cardinality ID columns are shaped out of the payload.
	_, hasTeamID := info["TEAM_ID"]
	assert.False(t, hasTeamID)

	headline, ok := got["headline_stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 24.5, headline["PTS"])
}

func TestBuildPlayerInfoEmptyDatasetsOmitted(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/commonplayerinfo": envelope(
			dataset("CommonPlayerInfo", []string{"PERSON_ID", "DISPLAY_FIRST_LAST"},
				[]any{201939, "Stephen Curry"}),
			dataset("PlayerHeadlineStats", []string{"PLAYER_ID", "PTS"}),
		),
	})

	got, err := buildPlayerInfo(context.Background(), cfg, PlayerInfoArgs{PlayerID: "201939"})
	require.NoError(t, err)
	assert.Contains(t, got, "player_info")
	assert.NotContains(t, got, "headline_stats")
}

func TestBuildPlayerStatsDatasetNames(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/playercareerstats": envelope(
			dataset("SeasonTotalsRegularSeason",
				[]string{"SEASON_ID", "PTS"},
				[]any{"2024-25", 26.4}, []any{"2025-26", 24.5}),
			dataset("CareerTotalsRegularSeason",
				[]string{"PTS"},
				[]any{24.8}),
			dataset("SeasonTotalsPostSeason", []string{"SEASON_ID", "PTS"}),
		),
	})

	got, err := buildPlayerStats(context.Background(), cfg, PlayerStatsArgs{PlayerID: "201939"})
	require.NoError(t, err)

	require.Contains(t, got, "regular_season")
	require.Contains(t, got, "career_regular_season")
	assert.NotContains(t, got, "post_season", "empty datasets are dropped")
	assert.Len(t, got["regular_season"], 2)
}

func TestBuildPlayerStatsRejectsUnknownPerMode(t *testing.T) {
	cfg, up := testCfg(t, nil)

	_, err := buildPlayerStats(context.Background(), cfg, PlayerStatsArgs{PlayerID: "201939", PerMode: "PerYear"})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "PerYear", ia.Value)
	assert.Empty(t, up.calls, "invalid argument must be rejected before the provider is called")
}

func TestBuildPlayerGameLog(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/playergamelog": envelope(dataset("PlayerGameLog",
			[]string{"GAME_ID", "GAME_DATE", "PTS"},
			[]any{"0022500101", "2026-01-15", 31},
			[]any{"0022500088", "2026-01-13", 27},
		)),
	})

	got, err := buildPlayerGameLog(context.Background(), cfg, PlayerGameLogArgs{PlayerID: "201939"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01-15", got[0]["GAME_DATE"])
	_, hasGameID := got[0]["GAME_ID"]
	assert.False(t, hasGameID)
}

func TestBuildPlayerSplitsValidation(t *testing.T) {
	cfg, _ := testCfg(t, nil)

	_, err := buildPlayerSplits(context.Background(), cfg, PlayerSplitsArgs{PlayerID: "1", MeasureType: "FourFactors"})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "measure_type", ia.Param)
}

func TestBuildPlayerSplits(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/playerdashboardbygeneralsplits": envelope(
			dataset("OverallPlayerDashboard", []string{"GROUP_VALUE", "PTS"}, []any{"2025-26", 24.5}),
			dataset("LocationPlayerDashboard", []string{"GROUP_VALUE", "PTS"},
				[]any{"Home", 26.0}, []any{"Road", 23.1}),
		),
	})

	got, err := buildPlayerSplits(context.Background(), cfg, PlayerSplitsArgs{PlayerID: "201939"})
	require.NoError(t, err)
	assert.Contains(t, got, "overall")
	require.Contains(t, got, "location")
	assert.Len(t, got["location"], 2)
}
