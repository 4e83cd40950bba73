package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shessenauer/samhesson-blog/pkg/adapters/fs"
	"github.com/shessenauer/samhesson-blog/pkg/post"
	"github.com/shessenauer/samhesson-blog/pkg/readingtime"
)

// ConfigFile is the optional site configuration file in the root.
const ConfigFile = "blog.yaml"

// Environment variables that override the configuration file.
const (
	EnvContentDir = "BLOG_CONTENT_DIR"
	EnvTemplate   = "BLOG_TEMPLATE"
	EnvWPM        = "BLOG_WPM"
)

// EnvFiles are read from the site root, later files taking precedence.
var EnvFiles = []string{".env", ".env.local"}

// Config is the resolved site configuration.
// Relative paths are relative to Root.
type Config struct {
	Root           string `yaml:"-"`
	ContentDir     string `yaml:"contentDir"`
	Template       string `yaml:"template"`
	Extension      string `yaml:"extension"`
	Pattern        string `yaml:"pattern,omitempty"`
	WordsPerMinute int    `yaml:"wordsPerMinute"`
	Author         string `yaml:"author"`
}

// DefaultConfig returns the layout of a standard site.
func DefaultConfig() Config {
	return Config{
		ContentDir:     filepath.Join("src", "content", "blog"),
		Template:       filepath.Join("scripts", "templates", "post-template.md"),
		Extension:      fs.DefaultExtension,
		WordsPerMinute: readingtime.DefaultWordsPerMinute,
		Author:         post.DefaultAuthor,
	}
}

// LoadConfig resolves the configuration for the site at root.
// Precedence, lowest first: defaults, blog.yaml, .env, .env.local, process environment.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Root = root

	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	env, err := readEnv(root)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	cfg.normalize()
	return cfg, nil
}

// readEnv merges the env files under the process environment without mutating it.
func readEnv(root string) (map[string]string, error) {
	env := map[string]string{}
	for _, name := range EnvFiles {
		path := filepath.Join(root, name)
		if !hasFile(root, name) {
			continue
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	for _, key := range []string{EnvContentDir, EnvTemplate, EnvWPM} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	if v := env[EnvContentDir]; v != "" {
		c.ContentDir = v
	}
	if v := env[EnvTemplate]; v != "" {
		c.Template = v
	}
	if v := env[EnvWPM]; v != "" {
		wpm, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWPM, v, err)
		}
		c.WordsPerMinute = wpm
	}
	return nil
}

func (c *Config) normalize() {
	if c.Extension == "" {
		c.Extension = fs.DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.WordsPerMinute <= 0 {
		c.WordsPerMinute = readingtime.DefaultWordsPerMinute
	}
	if c.Author == "" {
		c.Author = post.DefaultAuthor
	}
}

// ContentPath is the absolute content directory.
func (c Config) ContentPath() string {
	return c.resolve(c.ContentDir)
}

// TemplatePath is the absolute template file path.
func (c Config) TemplatePath() string {
	return c.resolve(c.Template)
}

func (c Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
