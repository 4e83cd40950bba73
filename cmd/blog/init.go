package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the content directory, post template and blog.yaml",
	Long:  `Lay out a site in the root directory. Existing files are left untouched.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := siteConfig()
		if err != nil {
			fatal("Failed to resolve site", err)
		}

		if err := initSite(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
			fatal("Failed to initialize site", err)
		}
	},
}

func initSite(ctx context.Context, cfg blog.Config, w io.Writer) error {
	res, err := blog.Init(ctx, cfg)
	if err != nil {
		return err
	}

	for _, p := range res.Created {
		fmt.Fprintf(w, "created %s\n", relTo(cfg.Root, p))
	}
	for _, p := range res.Skipped {
		fmt.Fprintf(w, "exists  %s\n", relTo(cfg.Root, p))
	}
	fmt.Fprintln(w, "Initialized blog in", cfg.Root)
	return nil
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

func init() {
	rootCmd.AddCommand(initCmd)
}
