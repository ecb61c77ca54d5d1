package query

import (
	"fmt"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/scope"
)

// Query is a validated memory search query.
type Query struct {
	term      string
	searchIn  scope.Scope
	timeframe string
}

// New validates and normalizes search parameters.
// Defaults: scope=all, timeframe=all. The term is required; matching is a
// case-insensitive substring test.
func New(term string, s scope.Scope, timeframe string) (Query, error) {
	if term == "" {
		return Query{}, domain.ErrEmptySearchTerm
	}
	if s == "" {
		s = scope.All
	}
	if !s.IsValid() {
		return Query{}, fmt.Errorf("%w: %q", domain.ErrUnknownScope, s)
	}
	if timeframe == "" {
		timeframe = "all"
	}

	return Query{term: term, searchIn: s, timeframe: timeframe}, nil
}

// Term returns the search term.
func (q *Query) Term() string { return q.term }

// Scope returns the collection restriction.
func (q *Query) Scope() scope.Scope { return q.searchIn }

// Timeframe returns the caller-supplied timeframe. The field is accepted
// and carried through unchanged; it applies no filtering.
func (q *Query) Timeframe() string { return q.timeframe }
