package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/shessenauer/samhesson-blog/pkg/core"
)

// DefaultExtension is the extension of blog documents.
const DefaultExtension = ".md"

// Repository implements core.Repository over a single flat content directory.
// Subdirectories are never descended into.
type Repository struct {
	Path   string
	config Config

	mu         sync.RWMutex
	lastListed *time.Time
	listed     int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string // content directory
	Extension string // e.g. ".md"
	Pattern   string // doublestar pattern matched against entry names; defaults to "*" + Extension
	Logger    *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if !strings.HasPrefix(config.Extension, ".") {
		config.Extension = "." + config.Extension
	}
	if config.Pattern == "" {
		config.Pattern = "*" + config.Extension
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize creates the content directory if it is missing.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("%w: %w", core.ErrContentDir, err)
	}
	return nil
}

// List reads every matching document in the content directory.
//
// Strategy:
//  1. Read the directory entries (os.ReadDir returns them sorted by name).
//  2. Skip subdirectories and names that do not match the pattern.
//  3. Read each file in full and attach its creation time.
func (r *Repository) List(ctx context.Context) ([]core.Document, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrContentDir, err)
	}

	var docs []core.Document
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		match, err := doublestar.Match(r.config.Pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid document pattern %q: %w", r.config.Pattern, err)
		}
		if !match || !strings.HasSuffix(name, r.config.Extension) {
			r.config.Logger.Debug("ignoring entry", "name", name)
			continue
		}

		doc, err := r.read(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	r.recordList(len(docs))
	return docs, nil
}

// Get retrieves a document by file name. The extension is optional.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	name, err := r.filename(id)
	if err != nil {
		return core.Document{}, err
	}

	doc, err := r.read(name)
	if os.IsNotExist(err) {
		return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}
	return doc, err
}

// Exists reports whether a document with the given ID is present.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	name, err := r.filename(id)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(filepath.Join(r.Path, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create writes a new document and returns its path.
// The write is atomic and never replaces an existing file.
func (r *Repository) Create(ctx context.Context, doc core.Document) (string, error) {
	name, err := r.filename(doc.ID)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(r.Path, name)

	if err := writeFileExclusive(fullPath, []byte(doc.Content), 0644); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %q", core.ErrPostExists, strings.TrimSuffix(name, r.config.Extension))
		}
		return "", fmt.Errorf("could not create post file at %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// filename maps an ID to a file name inside the content directory.
// IDs may not point outside the directory.
func (r *Repository) filename(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid document id %q", id)
	}
	if filepath.Ext(id) != r.config.Extension {
		id += r.config.Extension
	}
	return id, nil
}

func (r *Repository) read(name string) (core.Document, error) {
	fullPath := filepath.Join(r.Path, name)

	info, err := os.Stat(fullPath)
	if err != nil {
		return core.Document{}, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return core.Document{
		ID:        name,
		Path:      fullPath,
		Content:   string(data),
		CreatedAt: createdAt(fullPath, info),
	}, nil
}

// TemplateFile is a core.TemplateStore backed by a file on disk.
type TemplateFile struct {
	Path string
}

// Template reads the template file. Any failure is a configuration error.
func (t TemplateFile) Template(ctx context.Context) (string, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %w", core.ErrTemplate, t.Path, err)
	}
	return string(data), nil
}
