package refdata

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/courtside/nba-stats-mcp/internal/fault"
)

// PlayerMatch is one player resolution result.
type PlayerMatch struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// TeamMatch is one team resolution result.
type TeamMatch struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolvePlayers fuzzy-matches query against the player reference set.
//
// Every player lands in at most one bucket, first match wins:
// exact (full or last name equals the query), then prefix (full, last, or
// first name starts with it), then contains (query is a substring of the
// full name). Buckets concatenate in that priority order, then a single
// stable sort puts active players first and orders alphabetically within
// the same activity status — ties keep their bucket order.
func (c *Catalog) ResolvePlayers(ctx context.Context, query string) ([]PlayerMatch, error) {
	players, err := c.Players(ctx)
	if err != nil {
		return nil, err
	}
	q := normalize(query)

	var exact, prefix, contains []Player
	for _, p := range players {
		full := strings.ToLower(p.FullName)
		first := strings.ToLower(p.FirstName)
		last := strings.ToLower(p.LastName)

		switch {
		case full == q || last == q:
			exact = append(exact, p)
		case strings.HasPrefix(full, q) || strings.HasPrefix(last, q) || strings.HasPrefix(first, q):
			prefix = append(prefix, p)
		case strings.Contains(full, q):
			contains = append(contains, p)
		}
	}

	results := make([]Player, 0, len(exact)+len(prefix)+len(contains))
	results = append(results, exact...)
	results = append(results, prefix...)
	results = append(results, contains...)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsActive != results[j].IsActive {
			return results[i].IsActive
		}
		return results[i].FullName < results[j].FullName
	})

	out := make([]PlayerMatch, len(results))
	for i, p := range results {
		out[i] = PlayerMatch{
			ID:       strconv.Itoa(p.ID),
			FullName: p.FullName,
			IsActive: p.IsActive,
		}
	}
	return out, nil
}

// ResolveTeams resolves a team name, abbreviation, or city.
//
// An exact alias hit (full name, abbreviation, nickname, city, or
// "city nickname") short-circuits to a single match — team queries are
// usually unambiguous, and skipping the fuzzy pass keeps a common substring
// from dragging in unrelated teams. Otherwise any team whose combined
// searchable string contains the query is returned in reference order.
func ResolveTeams(query string) []TeamMatch {
	q := normalize(query)

	if id, ok := teamAliases()[q]; ok {
		for _, t := range teams {
			if t.ID == id {
				return []TeamMatch{teamMatch(t)}
			}
		}
	}

	var out []TeamMatch
	seen := make(map[int]bool)
	for _, t := range teams {
		if seen[t.ID] {
			continue
		}
		searchable := strings.ToLower(t.FullName + " " + t.Abbreviation + " " + t.City + " " + t.Nickname)
		if strings.Contains(searchable, q) {
			out = append(out, teamMatch(t))
			seen[t.ID] = true
		}
	}
	return out
}

// TeamID resolves query to a single team ID, or fails with NotFound
// carrying the original query.
func TeamID(query string) (string, error) {
	matches := ResolveTeams(query)
	if len(matches) == 0 {
		return "", &fault.NotFound{Kind: "team", Query: query}
	}
	return matches[0].ID, nil
}

func teamMatch(t Team) TeamMatch {
	return TeamMatch{
		ID:           strconv.Itoa(t.ID),
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
	}
}
