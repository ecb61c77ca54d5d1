// Package memnote implements the save-memory operation: appending a new
// Markdown note to a collection. Records are append-only from this side;
// nothing here ever rewrites or deletes an existing note.
package memnote

import (
	"context"
	"fmt"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

// Service persists notes.
type Service struct {
	store RecordWriter
}

// New creates a note service.
func New(store RecordWriter) *Service {
	return &Service{store: store}
}

// Save validates and writes a note. An empty collection defaults to
// business; legacy stays writable for migrating old notes by hand.
func (s *Service) Save(ctx context.Context, c memory.Collection, topic, content string) (memory.Record, error) {
	if topic == "" {
		return memory.Record{}, fmt.Errorf("%w: topic is required", domain.ErrInvalidArgument)
	}
	if content == "" {
		return memory.Record{}, fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}
	if c == "" {
		c = memory.Business
	}
	if !c.IsValid() {
		return memory.Record{}, fmt.Errorf("%w: %q", domain.ErrUnknownScope, c)
	}

	rec, err := s.store.Save(ctx, c, topic, content)
	if err != nil {
		return memory.Record{}, fmt.Errorf("save note: %w", err)
	}
	return rec, nil
}
