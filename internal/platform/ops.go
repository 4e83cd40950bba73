package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/shessenauer/samhesson-blog/pkg/adapters/fs"
	"github.com/shessenauer/samhesson-blog/pkg/post"
)

// InitResult lists what Init wrote and what it left untouched.
type InitResult struct {
	Created []string
	Skipped []string
}

// Init lays out a site at cfg.Root: the content directory, the default post
// template and blog.yaml. Existing files are never overwritten.
func Init(ctx context.Context, cfg Config) (InitResult, error) {
	var res InitResult
	cfg.normalize()

	contentDir := cfg.ContentPath()
	existed := hasFile(filepath.Dir(contentDir), filepath.Base(contentDir))
	repo := fs.NewRepository(fs.Config{Path: contentDir, Extension: cfg.Extension})
	if err := repo.Initialize(ctx); err != nil {
		return res, err
	}
	res.record(contentDir, !existed)

	if err := os.MkdirAll(filepath.Dir(cfg.TemplatePath()), 0755); err != nil {
		return res, fmt.Errorf("failed to create template directory: %w", err)
	}
	created, err := createFile(cfg.TemplatePath(), []byte(post.DefaultTemplate))
	if err != nil {
		return res, err
	}
	res.record(cfg.TemplatePath(), created)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return res, fmt.Errorf("failed to encode %s: %w", ConfigFile, err)
	}
	configPath := filepath.Join(cfg.Root, ConfigFile)
	created, err = createFile(configPath, data)
	if err != nil {
		return res, err
	}
	res.record(configPath, created)

	return res, nil
}

func (r *InitResult) record(path string, created bool) {
	if created {
		r.Created = append(r.Created, path)
	} else {
		r.Skipped = append(r.Skipped, path)
	}
}

// createFile writes data to a new file. It reports false if the file exists.
func createFile(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, f.Close()
}
