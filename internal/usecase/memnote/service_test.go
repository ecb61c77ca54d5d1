package memnote

import (
	"context"
	"errors"
	"testing"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

type mockWriter struct {
	lastCollection memory.Collection
	lastTopic      string
	lastContent    string
	err            error
}

func (m *mockWriter) Save(_ context.Context, c memory.Collection, topic, content string) (memory.Record, error) {
	m.lastCollection = c
	m.lastTopic = topic
	m.lastContent = content
	if m.err != nil {
		return memory.Record{}, m.err
	}
	return memory.New(c, "2026-08-24-note.md", content, "/roots/"+string(c)+"/2026-08-24-note.md"), nil
}

func TestSave_HappyPath(t *testing.T) {
	writer := &mockWriter{}
	svc := New(writer)

	rec, err := svc.Save(context.Background(), memory.Legacy, "Old lead", "call back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.lastCollection != memory.Legacy {
		t.Errorf("expected legacy collection, got %q", writer.lastCollection)
	}
	if rec.Name() == "" || rec.Path() == "" {
		t.Error("expected the persisted record back")
	}
}

func TestSave_DefaultsToBusiness(t *testing.T) {
	writer := &mockWriter{}
	svc := New(writer)

	if _, err := svc.Save(context.Background(), "", "Topic", "content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.lastCollection != memory.Business {
		t.Errorf("expected business default, got %q", writer.lastCollection)
	}
}

func TestSave_Validation(t *testing.T) {
	svc := New(&mockWriter{})

	if _, err := svc.Save(context.Background(), memory.Business, "", "content"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty topic, got %v", err)
	}
	if _, err := svc.Save(context.Background(), memory.Business, "topic", ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty content, got %v", err)
	}
	if _, err := svc.Save(context.Background(), memory.Collection("attic"), "topic", "content"); !errors.Is(err, domain.ErrUnknownScope) {
		t.Errorf("expected ErrUnknownScope for bad collection, got %v", err)
	}
}

func TestSave_WriterFailure(t *testing.T) {
	writer := &mockWriter{err: errors.New("disk full")}
	svc := New(writer)

	if _, err := svc.Save(context.Background(), memory.Business, "topic", "content"); err == nil {
		t.Fatal("expected error from writer failure")
	}
}
