package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtside/nba-stats-mcp/internal/ratelimit"
	"github.com/courtside/nba-stats-mcp/internal/refdata"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// ---- shared test helpers ----

// dataset builds one provider result set.
func dataset(name string, headers []string, rows ...[]any) map[string]any {
	return map[string]any{"name": name, "headers": headers, "rowSet": rows}
}

// envelope wraps result sets in the provider's response shape.
func envelope(datasets ...map[string]any) []byte {
	b, _ := json.Marshal(map[string]any{"resultSets": datasets})
	return b
}

// fakeUpstream serves canned responses by endpoint path ("/playergamelog"
// → body). Unknown paths get a 404 so a test fails loudly on an unexpected
// call.
type fakeUpstream struct {
	responses map[string][]byte
	calls     []string
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls = append(f.calls, r.URL.Path)
	body, ok := f.responses[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Write(body)
}

// testCfg wires a ServerConfig against a fake upstream.
func testCfg(t *testing.T, responses map[string][]byte) (ServerConfig, *fakeUpstream) {
	t.Helper()
	up := &fakeUpstream{responses: responses}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	client := statsapi.New(ratelimit.New(time.Millisecond), zerolog.Nop())
	client.BaseURL = srv.URL
	return ServerConfig{
		Client:        client,
		Catalog:       refdata.NewCatalog(statsapi.PlayerSource{Client: client}),
		DefaultSeason: defaultSeason,
		Logger:        zerolog.Nop(),
	}, up
}

// allPlayersFixture is a canned commonallplayers response with a small
// roster spanning active and retired players.
func allPlayersFixture() []byte {
	return envelope(dataset("CommonAllPlayers",
		[]string{"PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS"},
		[]any{201939, "Curry, Stephen", "Stephen Curry", 1},
		[]any{101108, "Curry, Seth", "Seth Curry", 1},
		[]any{787, "Curry, Dell", "Dell Curry", 0},
		[]any{2544, "James, LeBron", "LeBron James", 1},
		[]any{893, "Jordan, Michael", "Michael Jordan", 0},
	))
}
