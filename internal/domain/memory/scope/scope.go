package scope

import "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"

// Scope restricts which collections a search covers.
type Scope string

// Scope constants.
const (
	// All scans business first, then legacy.
	All      Scope = "all"
	Business Scope = "business"
	Legacy   Scope = "legacy"
)

// IsValid checks if the scope is one of the supported values.
func (s Scope) IsValid() bool {
	return s == All || s == Business || s == Legacy
}

// Collections returns the collections the scope selects, in scan order.
// Business is always scanned before legacy.
func (s Scope) Collections() []memory.Collection {
	switch s {
	case Business:
		return []memory.Collection{memory.Business}
	case Legacy:
		return []memory.Collection{memory.Legacy}
	case All:
		return []memory.Collection{memory.Business, memory.Legacy}
	default:
		return nil
	}
}
