// Package fault defines the error taxonomy surfaced by tool handlers.
//
// Three terminal conditions exist: NotFound (a resolution query matched
// nothing — user should retry with a different query), InvalidArgument (an
// enumerated parameter value outside its accepted set), and Upstream (any
// failure from the stats provider, normalized to a single message with the
// original cause preserved). NotFound and InvalidArgument pass through the
// operation boundary untouched; everything else is wrapped as Upstream
// exactly once.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound reports a resolution query that matched zero entities.
type NotFound struct {
	Kind  string // "player" or "team"
	Query string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("no %ss found matching %q", e.Kind, e.Query)
}

// InvalidArgument reports an enumerated parameter value outside its
// accepted set.
type InvalidArgument struct {
	Param    string
	Value    string
	Accepted []string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("unknown %s %q, must be one of: %s",
		e.Param, e.Value, strings.Join(e.Accepted, ", "))
}

// Upstream wraps any failure from the external stats provider under a
// uniform "failed to <op>" message while keeping the cause for diagnostics.
type Upstream struct {
	Op  string // human-readable operation, e.g. "get player stats"
	Err error
}

func (e *Upstream) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *Upstream) Unwrap() error { return e.Err }

// WrapOp normalizes err for the operation boundary: NotFound and
// InvalidArgument propagate as-is, anything else becomes an Upstream
// failure for op. A nil err returns nil.
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFound
	var ia *InvalidArgument
	if errors.As(err, &nf) || errors.As(err, &ia) {
		return err
	}
	var up *Upstream
	if errors.As(err, &up) {
		return err
	}
	return &Upstream{Op: op, Err: err}
}

// CheckEnum returns an InvalidArgument unless value is empty or a member of
// accepted.
func CheckEnum(param, value string, accepted ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range accepted {
		if value == a {
			return nil
		}
	}
	return &InvalidArgument{Param: param, Value: value, Accepted: accepted}
}
