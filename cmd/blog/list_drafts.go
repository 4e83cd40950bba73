package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
	"github.com/shessenauer/samhesson-blog/pkg/core"
	"github.com/shessenauer/samhesson-blog/pkg/report"
)

var (
	listFormat   string
	includeUnset bool
)

var listDraftsCmd = &cobra.Command{
	Use:   "list-drafts",
	Short: "List posts whose frontmatter marks them as drafts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Error reading blog directory", err)
		}

		if err := listDrafts(cmd.Context(), svc, cmd.OutOrStdout(), listFormat, includeUnset); err != nil {
			fatal("Error reading blog directory", err)
		}
	},
}

func listDrafts(ctx context.Context, svc *blog.Service, w io.Writer, format string, unset bool) error {
	rep, err := svc.ListDrafts(ctx, core.DraftFilter{IncludeUnset: unset})
	if err != nil {
		return err
	}
	return report.Render(w, format, rep)
}

func init() {
	rootCmd.AddCommand(listDraftsCmd)
	listDraftsCmd.Flags().StringVarP(&listFormat, "format", "f", report.DefaultFormat,
		fmt.Sprintf("Output format (%s)", strings.Join(report.Formats(), "|")))
	listDraftsCmd.Flags().BoolVar(&includeUnset, "include-unset", false, "Also list posts with no draft field")
}
