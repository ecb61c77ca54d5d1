package health

import (
	"context"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over the memory collections.
type Service struct {
	store       CollectionChecker
	collections []memory.Collection
}

// New creates a Service checking the given collections.
func New(store CollectionChecker, collections []memory.Collection) *Service {
	return &Service{store: store, collections: collections}
}

// Check probes every configured collection root.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.collections))

	for _, c := range s.collections {
		if err := s.store.Check(ctx, c); err != nil {
			checks[string(c)] = CheckError
		} else {
			checks[string(c)] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
