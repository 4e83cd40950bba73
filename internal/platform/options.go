package platform

import (
	"log/slog"
	"time"

	"github.com/shessenauer/samhesson-blog/pkg/core"
)

// options holds the internal configuration for the blog service.
type options struct {
	repository core.Repository
	templates  core.TemplateStore
	logger     *slog.Logger
	config     *Config
	clock      func() time.Time
	commit     bool
	overrides  []func(*Config)
}

// Option defines a functional option for configuring the service.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom storage adapter (e.g. a mock).
// If provided, the filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithTemplates injects a custom template source.
func WithTemplates(store core.TemplateStore) Option {
	return func(o *options) {
		o.templates = store
	}
}

// WithConfig uses cfg as is instead of loading it from the site root.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithContentDir overrides the content directory after loading.
func WithContentDir(dir string) Option {
	return withOverride(dir, func(c *Config) { c.ContentDir = dir })
}

// WithTemplatePath overrides the template file after loading.
func WithTemplatePath(path string) Option {
	return withOverride(path, func(c *Config) { c.Template = path })
}

// WithWordsPerMinute overrides the reading speed. Non-positive values are ignored.
func WithWordsPerMinute(wpm int) Option {
	return func(o *options) {
		if wpm > 0 {
			o.overrides = append(o.overrides, func(c *Config) { c.WordsPerMinute = wpm })
		}
	}
}

// WithCommit commits every new post to git.
func WithCommit(enabled bool) Option {
	return func(o *options) {
		o.commit = enabled
	}
}

// WithClock sets the time source used for post dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

func withOverride(value string, fn func(*Config)) Option {
	return func(o *options) {
		if value != "" {
			o.overrides = append(o.overrides, fn)
		}
	}
}
