package refdata

import "sync"

// Team is one franchise in the static reference set.
type Team struct {
	ID           int
	FullName     string
	Abbreviation string
	Nickname     string
	City         string
}

// teams is the static reference set. Franchise IDs are the provider's
// canonical identifiers and have been stable for decades.
var teams = []Team{
	{1610612737, "Atlanta Hawks", "ATL", "Hawks", "Atlanta"},
	{1610612738, "Boston Celtics", "BOS", "Celtics", "Boston"},
	{1610612739, "Cleveland Cavaliers", "CLE", "Cavaliers", "Cleveland"},
	{1610612740, "New Orleans Pelicans", "NOP", "Pelicans", "New Orleans"},
	{1610612741, "Chicago Bulls", "CHI", "Bulls", "Chicago"},
	{1610612742, "Dallas Mavericks", "DAL", "Mavericks", "Dallas"},
	{1610612743, "Denver Nuggets", "DEN", "Nuggets", "Denver"},
	{1610612744, "Golden State Warriors", "GSW", "Warriors", "Golden State"},
	{1610612745, "Houston Rockets", "HOU", "Rockets", "Houston"},
	{1610612746, "Los Angeles Clippers", "LAC", "Clippers", "Los Angeles"},
	{1610612747, "Los Angeles Lakers", "LAL", "Lakers", "Los Angeles"},
	{1610612748, "Miami Heat", "MIA", "Heat", "Miami"},
	{1610612749, "Milwaukee Bucks", "MIL", "Bucks", "Milwaukee"},
	{1610612750, "Minnesota Timberwolves", "MIN", "Timberwolves", "Minnesota"},
	{1610612751, "Brooklyn Nets", "BKN", "Nets", "Brooklyn"},
	{1610612752, "New York Knicks", "NYK", "Knicks", "New York"},
	{1610612753, "Orlando Magic", "ORL", "Magic", "Orlando"},
	{1610612754, "Indiana Pacers", "IND", "Pacers", "Indiana"},
	{1610612755, "Philadelphia 76ers", "PHI", "76ers", "Philadelphia"},
	{1610612756, "Phoenix Suns", "PHX", "Suns", "Phoenix"},
	{1610612757, "Portland Trail Blazers", "POR", "Trail Blazers", "Portland"},
	{1610612758, "Sacramento Kings", "SAC", "Kings", "Sacramento"},
	{1610612759, "San Antonio Spurs", "SAS", "Spurs", "San Antonio"},
	{1610612760, "Oklahoma City Thunder", "OKC", "Thunder", "Oklahoma City"},
	{1610612761, "Toronto Raptors", "TOR", "Raptors", "Toronto"},
	{1610612762, "Utah Jazz", "UTA", "Jazz", "Utah"},
	{1610612763, "Memphis Grizzlies", "MEM", "Grizzlies", "Memphis"},
	{1610612764, "Washington Wizards", "WAS", "Wizards", "Washington"},
	{1610612765, "Detroit Pistons", "DET", "Pistons", "Detroit"},
	{1610612766, "Charlotte Hornets", "CHA", "Hornets", "Charlotte"},
}

// Teams returns the static team reference set in canonical order. Callers
// must not mutate the returned slice.
func Teams() []Team { return teams }

var (
	aliasOnce sync.Once
	aliasMap  map[string]int
)

// teamAliases maps every normalized name variant (full name, abbreviation,
// nickname, city, "city nickname") to a team ID. Built once on first use;
// a pure function of the team reference set.
func teamAliases() map[string]int {
	aliasOnce.Do(func() {
		m := make(map[string]int, len(teams)*5)
		for _, t := range teams {
			m[normalize(t.FullName)] = t.ID
			m[normalize(t.Abbreviation)] = t.ID
			m[normalize(t.Nickname)] = t.ID
			m[normalize(t.City)] = t.ID
			m[normalize(t.City+" "+t.Nickname)] = t.ID
		}
		aliasMap = m
	})
	return aliasMap
}
