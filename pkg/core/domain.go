// Package core holds the domain of the blog toolkit: documents, their
// frontmatter records, draft entries and the service that orchestrates
// the authoring operations.
package core

import (
	"fmt"
	"time"
)

// Metadata is a flat frontmatter record. Values are either string or bool.
type Metadata map[string]any

// String returns the value stored under key, or fallback when the key is
// absent or holds a falsy value (empty string or false).
func (m Metadata) String(key, fallback string) string {
	switch v := m[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case bool:
		if v {
			return "true"
		}
	case nil:
	default:
		return fmt.Sprint(v)
	}
	return fallback
}

// Bool reports the boolean stored under key. ok is false when the key is
// absent or holds a non-boolean value.
func (m Metadata) Bool(key string) (value bool, ok bool) {
	value, ok = m[key].(bool)
	return value, ok
}

// Has reports whether key is present in the record.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Document is a text file in the content directory.
// It is read-only to everything except the post scaffolder, which creates new ones.
type Document struct {
	ID        string // file name, e.g. "hello-world.md"
	Path      string // absolute or root-relative location on disk
	Content   string // raw text, header block included
	CreatedAt time.Time
}

// Draft is the transient entry built for a document flagged as a draft.
type Draft struct {
	File     string    `json:"file" yaml:"file"`
	Title    string    `json:"title" yaml:"title"`
	Category string    `json:"category" yaml:"category"`
	PubDate  string    `json:"pubDate" yaml:"pubDate"`
	Created  time.Time `json:"created" yaml:"created"`
}

// Draft field defaults applied when the frontmatter omits a key.
const (
	DefaultTitle    = "Untitled"
	DefaultCategory = "Uncategorized"
	DefaultPubDate  = "No date"
)

// DraftReport is the result of scanning the content directory for drafts.
type DraftReport struct {
	// Documents counts every document matched in the content directory,
	// with or without frontmatter.
	Documents int
	Drafts    []Draft
}

// DraftFilter tunes which documents count as drafts.
type DraftFilter struct {
	// IncludeUnset treats a frontmatter block without a draft key as a draft,
	// mirroring the content schema's default.
	IncludeUnset bool
}

// NewPostResult describes a freshly scaffolded post.
type NewPostResult struct {
	Path  string
	Title string
	Slug  string
	Date  string
}

// ReadingTime is the estimate for a single document body.
type ReadingTime struct {
	ID      string
	Words   int
	Minutes int
	Label   string
}

// CheckResult holds the schema violations found in one document.
type CheckResult struct {
	ID       string
	Problems []string
}

// Valid reports whether the document passed the schema check.
func (c CheckResult) Valid() bool {
	return len(c.Problems) == 0
}
