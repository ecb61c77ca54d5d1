package memsearch

import (
	"context"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

// RecordLister reads one collection's records and its total record count.
// The count covers every record present, not just matches.
type RecordLister interface {
	List(ctx context.Context, c memory.Collection) ([]memory.Record, int, error)
}
