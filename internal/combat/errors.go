package combat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrInvalidRosterReference indicates an id that is not in the roster.
	ErrInvalidRosterReference = errors.New("invalid roster reference")
	// ErrInvalidFilterRange indicates malformed numeric query bounds.
	ErrInvalidFilterRange = errors.New("invalid filter range")
)

// RosterReferenceError names the missing id and where it was referenced.
type RosterReferenceError struct {
	ID         string
	Field      string // "enabled" or "times"
	Suggestion string
}

func (e *RosterReferenceError) Error() string {
	msg := fmt.Sprintf("%s: unit %q is not in the roster", e.Field, e.ID)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *RosterReferenceError) Unwrap() error { return ErrInvalidRosterReference }

// FilterRangeError describes a rejected bound.
type FilterRangeError struct {
	Field   string
	Value   any
	Message string
}

func (e *FilterRangeError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

func (e *FilterRangeError) Unwrap() error { return ErrInvalidFilterRange }

func newRosterReferenceError(field, id string, roster Roster) *RosterReferenceError {
	return &RosterReferenceError{ID: id, Field: field, Suggestion: suggest(id, roster)}
}

// suggest returns the closest roster id within an edit-distance budget that
// grows with the id length, or "" when nothing is close enough.
func suggest(id string, roster Roster) string {
	ids := make([]string, 0, len(roster))
	for k := range roster {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	best, bestDist := "", -1
	for _, cand := range ids {
		dist := levenshtein.ComputeDistance(id, cand)
		if dist > suggestLimit(len([]rune(cand))) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
