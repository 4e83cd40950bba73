package core

import "context"

// Repository defines the contract for reading and creating documents.
// Adhering to this interface keeps the service independent of where the
// content directory actually lives.
type Repository interface {
	// List returns every document in the content directory, in enumeration order.
	List(ctx context.Context) ([]Document, error)

	// Get retrieves a document by its ID (file name, with or without extension).
	Get(ctx context.Context, id string) (Document, error)

	// Exists reports whether a document with the given ID is present.
	Exists(ctx context.Context, id string) (bool, error)

	// Create writes a new document. It never overwrites: if a document with
	// the same ID exists it returns an error wrapping ErrPostExists.
	Create(ctx context.Context, doc Document) (path string, err error)
}

// TemplateStore provides the raw post template.
type TemplateStore interface {
	Template(ctx context.Context) (string, error)
}

// Committer records a created document in version control.
type Committer interface {
	Commit(ctx context.Context, path, message string) error
}
