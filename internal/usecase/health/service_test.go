package health

import (
	"context"
	"errors"
	"testing"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

type mockChecker struct {
	failOn memory.Collection
}

func (m *mockChecker) Check(_ context.Context, c memory.Collection) error {
	if c == m.failOn {
		return errors.New("unreadable root")
	}
	return nil
}

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockChecker{}, []memory.Collection{memory.Business, memory.Legacy})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("expected ok, got %q", report.Status)
	}
	if report.Checks["business"] != CheckOK || report.Checks["legacy"] != CheckOK {
		t.Errorf("unexpected checks: %v", report.Checks)
	}
}

func TestCheck_DegradedOnFailure(t *testing.T) {
	svc := New(&mockChecker{failOn: memory.Legacy}, []memory.Collection{memory.Business, memory.Legacy})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("expected degraded, got %q", report.Status)
	}
	if report.Checks["legacy"] != CheckError {
		t.Errorf("expected legacy check error, got %v", report.Checks)
	}
	if report.Checks["business"] != CheckOK {
		t.Errorf("expected business still ok, got %v", report.Checks)
	}
}
