package statsapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtside/nba-stats-mcp/internal/refdata"
)

// PlayerSource adapts the provider's all-players endpoint to the reference
// catalog's source interface.
type PlayerSource struct {
	Client *Client
}

// AllPlayers fetches and parses the full player list. The provider exposes
// names as "Last, First" plus a display name, and roster status as 1/0.
func (s PlayerSource) AllPlayers(ctx context.Context) ([]refdata.Player, error) {
	tables, err := s.Client.AllPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("commonallplayers: empty response")
	}
	t := tables[0]

	idIdx := t.ColumnIndex("PERSON_ID")
	nameIdx := t.ColumnIndex("DISPLAY_FIRST_LAST")
	lastFirstIdx := t.ColumnIndex("DISPLAY_LAST_COMMA_FIRST")
	statusIdx := t.ColumnIndex("ROSTERSTATUS")
	if idIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("commonallplayers: unexpected columns %v", t.Columns)
	}

	players := make([]refdata.Player, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, ok := cellInt(row, idIdx)
		if !ok {
			continue
		}
		full := cellString(row, nameIdx)
		if full == "" {
			continue
		}
		first, last := splitLastFirst(cellString(row, lastFirstIdx), full)
		status, _ := cellInt(row, statusIdx)
		players = append(players, refdata.Player{
			ID:        id,
			FullName:  full,
			FirstName: first,
			LastName:  last,
			IsActive:  status == 1,
		})
	}
	return players, nil
}

// splitLastFirst derives first/last name from "Last, First", falling back
// to splitting the display name on its last space (mononyms get an empty
// first name).
func splitLastFirst(lastFirst, full string) (first, last string) {
	if i := strings.Index(lastFirst, ","); i >= 0 {
		return strings.TrimSpace(lastFirst[i+1:]), strings.TrimSpace(lastFirst[:i])
	}
	if i := strings.LastIndex(full, " "); i >= 0 {
		return full[:i], full[i+1:]
	}
	return "", full
}

func cellString(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func cellInt(row []any, i int) (int, bool) {
	if i < 0 || i >= len(row) {
		return 0, false
	}
	switch n := row[i].(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
