package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
)

var wordsPerMinute int

var readingTimeCmd = &cobra.Command{
	Use:   "reading-time <file|slug>...",
	Short: "Estimate the reading time of posts",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService(blog.WithWordsPerMinute(wordsPerMinute))
		if err != nil {
			fatal("Error", err)
		}

		if err := readingTime(cmd.Context(), svc, cmd.OutOrStdout(), args, verbose); err != nil {
			fatal("Error", err)
		}
	},
}

func readingTime(ctx context.Context, svc *blog.Service, w io.Writer, ids []string, words bool) error {
	for _, id := range ids {
		rt, err := svc.ReadingTime(ctx, id)
		if err != nil {
			return err
		}
		if words {
			fmt.Fprintf(w, "%s: %s (%d words)\n", rt.ID, rt.Label, rt.Words)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", rt.ID, rt.Label)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(readingTimeCmd)
	readingTimeCmd.Flags().IntVar(&wordsPerMinute, "wpm", 0, "Reading speed in words per minute (default from config, 200)")
}
