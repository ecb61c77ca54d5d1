package memnote

import (
	"context"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

// RecordWriter persists a new record into a collection.
type RecordWriter interface {
	Save(ctx context.Context, c memory.Collection, topic, content string) (memory.Record, error)
}
