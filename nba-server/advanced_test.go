package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-stats-mcp/internal/fault"
)

func TestBuildAdvancedStatsRejectsUnknownStatType(t *testing.T) {
	cfg, up := testCfg(t, nil)

	_, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{StatType: "clutch"})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "stat_type", ia.Param)
	assert.Equal(t, "clutch", ia.Value)
	assert.ElementsMatch(t, []string{"tracking", "hustle", "defense", "playtype"}, ia.Accepted)
	assert.Empty(t, up.calls)
}

func TestBuildAdvancedStatsTracking(t *testing.T) {
	cfg, up := testCfg(t, map[string][]byte{
		"/leaguedashptstats": envelope(dataset("LeagueDashPtStats",
			[]string{"PLAYER_ID", "PLAYER_NAME", "DRIVES", "DRIVE_PTS"},
			[]any{1628983, "Shai Gilgeous-Alexander", 18.2, 10.1},
		)),
	})

	got, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType:      "tracking",
		PtMeasureType: "Drives",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 18.2, got[0]["DRIVES"])
	_, hasPlayerID := got[0]["PLAYER_ID"]
	assert.False(t, hasPlayerID)
	assert.Equal(t, []string{"/leaguedashptstats"}, up.calls)
}

func TestBuildAdvancedStatsTrackingRejectsUnknownMeasure(t *testing.T) {
	cfg, up := testCfg(t, nil)

	_, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType:      "tracking",
		PtMeasureType: "Dunks",
	})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "pt_measure_type", ia.Param)
	assert.Empty(t, up.calls)
}

func TestBuildAdvancedStatsHustle(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/leaguehustlestatsplayer": envelope(dataset("HustleStatsPlayer",
			[]string{"PLAYER_NAME", "DEFLECTIONS", "CHARGES_DRAWN"},
			[]any{"Alex Caruso", 3.4, 0.2},
		)),
	})

	got, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{StatType: "hustle"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3.4, got[0]["DEFLECTIONS"])
}

func TestBuildAdvancedStatsDefense(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/leaguedashptdefend": envelope(dataset("LeagueDashPtDefend",
			[]string{"PLAYER_NAME", "D_FGM", "D_FG_PCT"},
			[]any{"Victor Wembanyama", 4.1, 0.412},
		)),
	})

	got, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType:        "defense",
		DefenseCategory: "Less Than 6Ft",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.412, got[0]["D_FG_PCT"])
}

func TestBuildAdvancedStatsDefenseRejectsUnknownCategory(t *testing.T) {
	cfg, up := testCfg(t, nil)

	_, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType:        "defense",
		DefenseCategory: "Dunks",
	})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "defense_category", ia.Param)
	assert.Empty(t, up.calls)
}

func TestBuildAdvancedStatsPlayType(t *testing.T) {
	cfg, _ := testCfg(t, map[string][]byte{
		"/synergyplaytypes": envelope(dataset("SynergyPlayType",
			[]string{"PLAYER_NAME", "PPP", "POSS_PCT"},
			[]any{"Nikola Jokic", 1.12, 0.18},
		)),
	})

	got, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType: "playtype",
		PlayType: "Postup",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.12, got[0]["PPP"])
}

func TestBuildAdvancedStatsSeasonTypeValidation(t *testing.T) {
	cfg, up := testCfg(t, nil)

	_, err := buildAdvancedStats(context.Background(), cfg, AdvancedStatsArgs{
		StatType:   "hustle",
		SeasonType: "Summer League",
	})
	var ia *fault.InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "season_type", ia.Param)
	assert.Empty(t, up.calls)
}
