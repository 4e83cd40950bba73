package core

import "errors"

// Common errors.
var (
	// ErrMissingTitle is a usage error: new-post was called without a title.
	ErrMissingTitle = errors.New("missing post title")
	// ErrInvalidSlug is a usage error: the title has no characters usable in a slug.
	ErrInvalidSlug = errors.New("title produces an empty slug")
	// ErrPostExists is a conflict error: a document already lives at the target path.
	ErrPostExists = errors.New("post already exists")
	// ErrTemplate is a configuration error: the post template cannot be read.
	ErrTemplate = errors.New("could not read template")
	// ErrContentDir is an I/O error: the content directory cannot be enumerated.
	ErrContentDir = errors.New("could not read content directory")
	// ErrNotFound is returned when a document id does not resolve to a file.
	ErrNotFound = errors.New("document not found")
)
