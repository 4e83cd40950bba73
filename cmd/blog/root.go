package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
)

var (
	verbose      bool
	rootDir      string
	contentDir   string
	templatePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Authoring tools for a markdown blog",
	Long: `blog manages the markdown posts of a static site.
It lists drafts, scaffolds new posts from a template, estimates reading time
and checks frontmatter against the content schema.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Site root (default: nearest directory with blog.yaml, package.json or .git)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "Content directory (overrides blog.yaml and BLOG_CONTENT_DIR)")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "Post template file (overrides blog.yaml and BLOG_TEMPLATE)")
}

// siteRoot resolves --root or discovers the root from the working directory.
func siteRoot() (string, error) {
	if rootDir != "" {
		return filepath.Abs(rootDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return blog.FindRoot(wd)
}

// siteConfig loads the configuration with the command line overrides applied.
func siteConfig() (blog.Config, error) {
	root, err := siteRoot()
	if err != nil {
		return blog.Config{}, err
	}
	cfg, err := blog.LoadConfig(root)
	if err != nil {
		return blog.Config{}, err
	}
	if contentDir != "" {
		if cfg.ContentDir, err = filepath.Abs(contentDir); err != nil {
			return blog.Config{}, err
		}
	}
	if templatePath != "" {
		if cfg.Template, err = filepath.Abs(templatePath); err != nil {
			return blog.Config{}, err
		}
	}
	return cfg, nil
}

// newService builds the service for the resolved site.
func newService(opts ...blog.Option) (*blog.Service, error) {
	cfg, err := siteConfig()
	if err != nil {
		return nil, err
	}
	base := []blog.Option{
		blog.WithConfig(cfg),
		blog.WithLogger(slog.Default()),
	}
	return blog.New(cfg.Root, append(base, opts...)...)
}
