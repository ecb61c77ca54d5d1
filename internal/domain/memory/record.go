// Package memory defines the record and collection types for the
// dual-source memory store.
package memory

// Collection identifies one of the two record stores.
type Collection string

// The two collections. Business notes are written by the running assistant;
// legacy notes predate it and live under the user's home directory.
const (
	Business Collection = "business"
	Legacy   Collection = "legacy"
)

// IsValid checks if the collection is one of the supported values.
func (c Collection) IsValid() bool {
	return c == Business || c == Legacy
}

// Record is one persisted Markdown note.
type Record struct {
	collection Collection
	name       string
	content    string
	path       string
}

// New creates a record.
func New(collection Collection, name, content, path string) Record {
	return Record{collection: collection, name: name, content: content, path: path}
}

// Collection returns the collection the record belongs to.
func (r *Record) Collection() Collection { return r.collection }

// Name returns the record's filename, unique within its collection.
func (r *Record) Name() string { return r.name }

// Content returns the full UTF-8 text content.
func (r *Record) Content() string { return r.content }

// Path returns the record's storage location.
func (r *Record) Path() string { return r.path }
