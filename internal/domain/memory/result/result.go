package result

import "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"

// Result set shape constants.
const (
	// PreviewLength is the number of leading characters shown per hit.
	PreviewLength = 200
	// MaxResults caps the returned result list. The true match count is
	// reported separately and is never capped.
	MaxResults = 10
)

// Result is a single search hit.
type Result struct {
	source  memory.Collection
	name    string
	preview string
	path    string
}

// New creates a search result.
func New(source memory.Collection, name, preview, path string) Result {
	return Result{source: source, name: name, preview: preview, path: path}
}

// Source returns the collection the hit came from.
func (r *Result) Source() memory.Collection { return r.source }

// Name returns the matched record's filename.
func (r *Result) Name() string { return r.name }

// Preview returns the truncation-marked content excerpt.
func (r *Result) Preview() string { return r.preview }

// Path returns the matched record's storage location.
func (r *Result) Path() string { return r.path }
