// Package memsearch implements the dual-source memory search engine:
// a linear, case-insensitive substring scan over the business and legacy
// collections, merged in fixed order and capped.
package memsearch

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/query"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/result"
)

// Report is the full outcome of one search: the capped hit list plus
// summary counts. Found is the true pre-cap match count; Totals holds the
// record count of every scanned collection regardless of matches.
type Report struct {
	Found    int
	Returned int
	Totals   map[memory.Collection]int
	Results  []result.Result
}

// Service executes memory searches.
type Service struct {
	store RecordLister
}

// New creates a search service.
func New(store RecordLister) *Service {
	return &Service{store: store}
}

// Search scans the collections the query's scope selects. The collections
// are read concurrently but reassembled business-before-legacy, so output
// ordering is deterministic. Either a full report is returned or an error,
// never both; zero matches is a normal outcome.
func (s *Service) Search(ctx context.Context, q *query.Query) (Report, error) {
	collections := q.Scope().Collections()

	type scanned struct {
		total int
		hits  []result.Result
	}
	outputs := make([]scanned, len(collections))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range collections {
		i, c := i, c
		g.Go(func() error {
			records, total, err := s.store.List(gctx, c)
			if err != nil {
				return fmt.Errorf("list %s: %w", c, err)
			}
			outputs[i] = scanned{total: total, hits: scan(records, q.Term())}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Totals: make(map[memory.Collection]int, len(collections))}
	var hits []result.Result
	for i, c := range collections {
		report.Totals[c] = outputs[i].total
		hits = append(hits, outputs[i].hits...)
	}

	report.Found = len(hits)
	if len(hits) > result.MaxResults {
		hits = hits[:result.MaxResults]
	}
	report.Returned = len(hits)
	report.Results = hits
	return report, nil
}

// scan filters one collection's records by a case-insensitive substring
// test against full content. An empty term matches every record.
func scan(records []memory.Record, term string) []result.Result {
	needle := strings.ToLower(term)

	var hits []result.Result
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Content()), needle) {
			continue
		}
		hits = append(hits, result.New(rec.Collection(), rec.Name(), preview(rec.Content()), rec.Path()))
	}
	return hits
}

// preview returns the first PreviewLength characters of content with the
// truncation marker appended whether or not anything was cut off.
func preview(content string) string {
	if runes := []rune(content); len(runes) > result.PreviewLength {
		content = string(runes[:result.PreviewLength])
	}
	return content + "..."
}
