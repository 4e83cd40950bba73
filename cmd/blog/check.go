package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate post frontmatter against the content schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Error", err)
		}

		invalid, err := check(cmd.Context(), svc, cmd.OutOrStdout())
		if err != nil {
			fatal("Error reading blog directory", err)
		}
		if invalid > 0 {
			os.Exit(1)
		}
	},
}

// check prints one line per invalid document and returns how many failed.
func check(ctx context.Context, svc *blog.Service, w io.Writer) (int, error) {
	results, err := svc.Check(ctx)
	if err != nil {
		return 0, err
	}

	invalid := 0
	for _, r := range results {
		if r.Valid() {
			continue
		}
		invalid++
		fmt.Fprintf(w, "❌ %s\n", r.ID)
		for _, p := range r.Problems {
			fmt.Fprintf(w, "   - %s\n", p)
		}
	}

	if invalid == 0 {
		fmt.Fprintf(w, "✅ %d post(s) checked, all valid\n", len(results))
	} else {
		fmt.Fprintf(w, "\n%d of %d post(s) invalid\n", invalid, len(results))
	}
	return invalid, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
