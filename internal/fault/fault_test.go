package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapOpPassesUserErrorsThrough(t *testing.T) {
	nf := &NotFound{Kind: "team", Query: "sonics"}
	assert.Equal(t, error(nf), WrapOp("get team stats", nf))

	ia := &InvalidArgument{Param: "per_mode", Value: "PerYear", Accepted: []string{"PerGame"}}
	assert.Equal(t, error(ia), WrapOp("get team stats", ia))

	wrapped := fmt.Errorf("resolve: %w", nf)
	var got *NotFound
	require.True(t, errors.As(WrapOp("get team stats", wrapped), &got))
	assert.Equal(t, "sonics", got.Query)
}

func TestWrapOpNormalizesUpstreamFailures(t *testing.T) {
	cause := fmt.Errorf("GET playercareerstats: status 500")
	err := WrapOp("get player stats", cause)

	var up *Upstream
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "failed to get player stats: GET playercareerstats: status 500", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapOpDoesNotDoubleWrap(t *testing.T) {
	inner := WrapOp("get standings", fmt.Errorf("boom"))
	outer := WrapOp("get standings", inner)
	assert.Equal(t, inner, outer)
}

func TestWrapOpNil(t *testing.T) {
	assert.NoError(t, WrapOp("anything", nil))
}

func TestCheckEnum(t *testing.T) {
	assert.NoError(t, CheckEnum("season_type", "Playoffs", "Regular Season", "Playoffs"))
	assert.NoError(t, CheckEnum("season_type", "", "Regular Season", "Playoffs"))

	err := CheckEnum("season_type", "Preseason", "Regular Season", "Playoffs")
	var ia *InvalidArgument
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "Preseason", ia.Value)
	assert.Equal(t, []string{"Regular Season", "Playoffs"}, ia.Accepted)
	assert.Contains(t, err.Error(), `unknown season_type "Preseason"`)
	assert.Contains(t, err.Error(), "Regular Season, Playoffs")
}

func TestNotFoundMessage(t *testing.T) {
	err := &NotFound{Kind: "player", Query: "zzz"}
	assert.Equal(t, `no players found matching "zzz"`, err.Error())
}
