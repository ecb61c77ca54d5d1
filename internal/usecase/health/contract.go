package health

import (
	"context"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

// CollectionChecker verifies a collection root is usable. A missing root
// must report healthy: absence is a normal empty-collection condition.
type CollectionChecker interface {
	Check(ctx context.Context, c memory.Collection) error
}
