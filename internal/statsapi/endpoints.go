package statsapi

import (
	"context"
	"net/url"
	"strconv"
)

// leagueID is the NBA's league identifier on the stats endpoints.
const leagueID = "00"

// GameLogFilter narrows a player or team game log.
type GameLogFilter struct {
	Season     string
	SeasonType string
	DateFrom   string // MM/DD/YYYY, optional
	DateTo     string // MM/DD/YYYY, optional
}

// Values maps the filter to provider query parameters. Optional fields are
// added only when present.
func (f GameLogFilter) Values() url.Values {
	v := url.Values{}
	v.Set("Season", f.Season)
	v.Set("SeasonType", f.SeasonType)
	if f.DateFrom != "" {
		v.Set("DateFrom", f.DateFrom)
	}
	if f.DateTo != "" {
		v.Set("DateTo", f.DateTo)
	}
	return v
}

// LeaguePlayerStatsFilter is the full filter set for the league-wide player
// stats dashboard. Zero values mean "no filter" and are omitted from the
// request, matching the provider's nullable parameters.
type LeaguePlayerStatsFilter struct {
	Season         string
	MeasureType    string
	PerMode        string
	SeasonType     string
	PlayerPosition string
	Conference     string
	Division       string
	StarterBench   string
	Experience     string
	College        string
	Country        string
	DraftYear      string
	DraftPick      string
	Height         string
	Weight         string
	LastNGames     int
	Month          int
	OpponentTeamID int
	Outcome        string
	Location       string
	ShotClockRange string
}

// Values maps the filter to provider query parameters.
func (f LeaguePlayerStatsFilter) Values() url.Values {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", f.Season)
	v.Set("MeasureType", f.MeasureType)
	v.Set("PerMode", f.PerMode)
	v.Set("SeasonType", f.SeasonType)
	v.Set("LastNGames", strconv.Itoa(f.LastNGames))
	v.Set("Month", strconv.Itoa(f.Month))
	v.Set("OpponentTeamID", strconv.Itoa(f.OpponentTeamID))

	opt := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	opt("PlayerPosition", f.PlayerPosition)
	opt("Conference", f.Conference)
	opt("Division", f.Division)
	opt("StarterBench", f.StarterBench)
	opt("PlayerExperience", f.Experience)
	opt("College", f.College)
	opt("Country", f.Country)
	opt("DraftYear", f.DraftYear)
	opt("DraftPick", f.DraftPick)
	opt("Height", f.Height)
	opt("Weight", f.Weight)
	opt("Outcome", f.Outcome)
	opt("Location", f.Location)
	opt("ShotClockRange", f.ShotClockRange)
	return v
}

// AllPlayers fetches the full historical player list (the reference set for
// name resolution).
func (c *Client) AllPlayers(ctx context.Context) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("IsOnlyCurrentSeason", "0")
	return c.ResultSets(ctx, "commonallplayers", v)
}

// PlayerInfo fetches bio and headline stats for one player.
func (c *Client) PlayerInfo(ctx context.Context, playerID string) ([]Table, error) {
	v := url.Values{}
	v.Set("PlayerID", playerID)
	return c.ResultSets(ctx, "commonplayerinfo", v)
}

// PlayerCareerStats fetches season-by-season and career totals.
func (c *Client) PlayerCareerStats(ctx context.Context, playerID, perMode string) ([]Table, error) {
	v := url.Values{}
	v.Set("PlayerID", playerID)
	v.Set("PerMode", perMode)
	return c.ResultSets(ctx, "playercareerstats", v)
}

// PlayerGameLog fetches a player's per-game lines for a season.
func (c *Client) PlayerGameLog(ctx context.Context, playerID string, f GameLogFilter) ([]Table, error) {
	v := f.Values()
	v.Set("PlayerID", playerID)
	return c.ResultSets(ctx, "playergamelog", v)
}

// PlayerSplits fetches the general-splits dashboard (home/away, win/loss,
// monthly, etc.).
func (c *Client) PlayerSplits(ctx context.Context, playerID, season, measureType, perMode, seasonType string) ([]Table, error) {
	v := url.Values{}
	v.Set("PlayerID", playerID)
	v.Set("Season", season)
	v.Set("MeasureType", measureType)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	return c.ResultSets(ctx, "playerdashboardbygeneralsplits", v)
}

// TeamYearByYearStats fetches franchise history stats.
func (c *Client) TeamYearByYearStats(ctx context.Context, teamID, perMode, seasonType string) ([]Table, error) {
	v := url.Values{}
	v.Set("TeamID", teamID)
	v.Set("LeagueID", leagueID)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	return c.ResultSets(ctx, "teamyearbyyearstats", v)
}

// TeamGameLog fetches a team's per-game results for a season.
func (c *Client) TeamGameLog(ctx context.Context, teamID string, f GameLogFilter) ([]Table, error) {
	v := f.Values()
	v.Set("TeamID", teamID)
	return c.ResultSets(ctx, "teamgamelog", v)
}

// TeamRoster fetches players and coaches for a team season.
func (c *Client) TeamRoster(ctx context.Context, teamID, season string) ([]Table, error) {
	v := url.Values{}
	v.Set("TeamID", teamID)
	v.Set("Season", season)
	return c.ResultSets(ctx, "commonteamroster", v)
}

// Standings fetches the league standings table.
func (c *Client) Standings(ctx context.Context, season, seasonType string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", season)
	v.Set("SeasonType", seasonType)
	return c.ResultSets(ctx, "leaguestandingsv3", v)
}

// LeagueLeaders fetches players ranked by one stat category.
func (c *Client) LeagueLeaders(ctx context.Context, stat, season, perMode, seasonType string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("StatCategory", stat)
	v.Set("Season", season)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	v.Set("Scope", "S")
	return c.ResultSets(ctx, "leagueleaders", v)
}

// LeaguePlayerStats fetches the filtered league-wide player dashboard.
func (c *Client) LeaguePlayerStats(ctx context.Context, f LeaguePlayerStatsFilter) ([]Table, error) {
	return c.ResultSets(ctx, "leaguedashplayerstats", f.Values())
}

// Scoreboard fetches the game-day scoreboard datasets for a date
// (YYYY-MM-DD).
func (c *Client) Scoreboard(ctx context.Context, gameDate string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("GameDate", gameDate)
	v.Set("DayOffset", "0")
	return c.ResultSets(ctx, "scoreboardv2", v)
}

// BoxScoreTraditional fetches player and team box score lines for a game.
func (c *Client) BoxScoreTraditional(ctx context.Context, gameID string) ([]Table, error) {
	return c.ResultSets(ctx, "boxscoretraditionalv2", boxScoreValues(gameID))
}

// BoxScoreAdvanced fetches advanced per-player and per-team metrics for a
// game.
func (c *Client) BoxScoreAdvanced(ctx context.Context, gameID string) ([]Table, error) {
	return c.ResultSets(ctx, "boxscoreadvancedv2", boxScoreValues(gameID))
}

func boxScoreValues(gameID string) url.Values {
	v := url.Values{}
	v.Set("GameID", gameID)
	v.Set("StartPeriod", "0")
	v.Set("EndPeriod", "10")
	v.Set("StartRange", "0")
	v.Set("EndRange", "0")
	v.Set("RangeType", "0")
	return v
}

// TrackingStats fetches player tracking data for one measure type.
func (c *Client) TrackingStats(ctx context.Context, season, perMode, seasonType, ptMeasureType string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", season)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	v.Set("PtMeasureType", ptMeasureType)
	v.Set("PlayerOrTeam", "Player")
	return c.ResultSets(ctx, "leaguedashptstats", v)
}

// HustleStats fetches league-wide hustle stats.
func (c *Client) HustleStats(ctx context.Context, season, perMode, seasonType string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", season)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	return c.ResultSets(ctx, "leaguehustlestatsplayer", v)
}

// DefenseStats fetches defensive matchup data for one category.
func (c *Client) DefenseStats(ctx context.Context, season, perMode, seasonType, category string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", season)
	v.Set("PerMode", perMode)
	v.Set("SeasonType", seasonType)
	v.Set("DefenseCategory", category)
	return c.ResultSets(ctx, "leaguedashptdefend", v)
}

// PlayTypeStats fetches synergy play-type data for offensive possessions.
func (c *Client) PlayTypeStats(ctx context.Context, season, seasonType, playType string) ([]Table, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("SeasonYear", season)
	v.Set("SeasonType", seasonType)
	v.Set("PlayType", playType)
	v.Set("PlayerOrTeam", "P")
	v.Set("TypeGrouping", "offensive")
	return c.ResultSets(ctx, "synergyplaytypes", v)
}
