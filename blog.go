package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shessenauer/samhesson-blog/internal/platform"
	"github.com/shessenauer/samhesson-blog/pkg/core"
)

// --- Types ---

// Service is the blog authoring service.
type Service = core.Service

// Config is the resolved site configuration.
type Config = platform.Config

// InitResult lists what Init created and skipped.
type InitResult = platform.InitResult

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithTemplates allows injecting a custom template source.
func WithTemplates(store core.TemplateStore) Option {
	return platform.WithTemplates(store)
}

// WithConfig skips loading blog.yaml and uses cfg instead.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithContentDir overrides the content directory.
func WithContentDir(dir string) Option {
	return platform.WithContentDir(dir)
}

// WithTemplatePath overrides the post template file.
func WithTemplatePath(path string) Option {
	return platform.WithTemplatePath(path)
}

// WithWordsPerMinute overrides the reading speed.
func WithWordsPerMinute(wpm int) Option {
	return platform.WithWordsPerMinute(wpm)
}

// WithCommit commits every new post to git.
func WithCommit(enabled bool) Option {
	return platform.WithCommit(enabled)
}

// WithClock sets the time source for post dates.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// --- Factory ---

// New creates a service for the site at root.
func New(root string, opts ...Option) (*Service, error) {
	return platform.New(root, opts...)
}

// FindRoot returns the site root above dir, or dir itself if there is none.
func FindRoot(dir string) (string, error) {
	return platform.ResolveRoot(dir)
}

// LoadConfig resolves the configuration for the site at root.
func LoadConfig(root string) (Config, error) {
	return platform.LoadConfig(root)
}

// DefaultConfig returns the standard site layout.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// Init lays out a new site without overwriting anything.
func Init(ctx context.Context, cfg Config) (InitResult, error) {
	return platform.Init(ctx, cfg)
}
