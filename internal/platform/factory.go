package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/introspection"

	"github.com/shessenauer/samhesson-blog/pkg/adapters/fs"
	"github.com/shessenauer/samhesson-blog/pkg/core"
	"github.com/shessenauer/samhesson-blog/pkg/git"
)

// New wires a blog service for the site at root.
//
//	svc, err := platform.New(".", platform.WithContentDir("posts"))
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := resolveConfig(root, o)
	if err != nil {
		return nil, err
	}

	serviceOpts := []core.ServiceOption{
		core.WithServiceLogger(o.logger),
		core.WithWordsPerMinute(cfg.WordsPerMinute),
		core.WithAuthor(cfg.Author),
	}
	if o.clock != nil {
		serviceOpts = append(serviceOpts, core.WithClock(o.clock))
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:      cfg.ContentPath(),
			Extension: cfg.Extension,
			Pattern:   cfg.Pattern,
			Logger:    o.logger,
		})
	}

	templates := o.templates
	if templates == nil {
		templates = fs.TemplateFile{Path: cfg.TemplatePath()}
	}
	serviceOpts = append(serviceOpts, core.WithTemplates(templates))

	if o.commit {
		client := git.NewClient(cfg.Root, o.logger)
		if !client.IsRepo(context.Background()) {
			return nil, fmt.Errorf("cannot commit: %s is not a git repository", cfg.Root)
		}
		serviceOpts = append(serviceOpts, core.WithCommitter(client))
	}

	if o.logger != nil {
		o.logger.Debug("resolved configuration",
			"root", cfg.Root,
			"content", cfg.ContentPath(),
			"template", cfg.TemplatePath(),
			"wpm", cfg.WordsPerMinute,
		)
		if s, ok := repo.(introspection.Introspectable); ok {
			o.logger.Debug("repository", "state", s.State())
		}
	}

	return core.NewService(repo, serviceOpts...), nil
}

func resolveConfig(root string, o *options) (Config, error) {
	var cfg Config
	if o.config != nil {
		cfg = *o.config
		if cfg.Root == "" {
			cfg.Root = root
		}
	} else {
		loaded, err := LoadConfig(root)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	for _, override := range o.overrides {
		override(&cfg)
	}
	cfg.normalize()
	return cfg, nil
}
