package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
	"github.com/shessenauer/samhesson-blog/pkg/core"
)

var commitPost bool

var newPostCmd = &cobra.Command{
	Use:   "new-post <title...>",
	Short: "Scaffold a new draft post from the template",
	Long: `Create <content-dir>/<slug>.md from the post template.
All arguments are joined with spaces to form the title. Existing posts are never overwritten.`,
	Example: `  blog new-post "My First Post"
  blog new-post Notes on Go --commit`,
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		if strings.TrimSpace(title) == "" {
			fmt.Fprintln(os.Stderr, "Error: Please provide a post title")
			fmt.Fprintln(os.Stderr, `Usage: blog new-post "Your Post Title"`)
			os.Exit(1)
		}

		var opts []blog.Option
		if commitPost {
			opts = append(opts, blog.WithCommit(true))
		}
		svc, err := newService(opts...)
		if err != nil {
			fatal("Error", err)
		}

		if err := newPost(cmd.Context(), svc, cmd.OutOrStdout(), title); err != nil {
			fatal("Error", err)
		}
	},
}

func newPost(ctx context.Context, svc *blog.Service, w io.Writer, title string) error {
	res, err := svc.NewPost(ctx, title)
	if err != nil {
		if errors.Is(err, core.ErrPostExists) {
			return fmt.Errorf("%w (choose a different title or edit the existing file)", err)
		}
		return err
	}

	fmt.Fprintf(w, "✅ Created new post: %s\n", res.Path)
	fmt.Fprintf(w, "📝 Title: %s\n", res.Title)
	fmt.Fprintf(w, "🔗 Slug: %s\n", res.Slug)
	fmt.Fprintf(w, "📅 Date: %s\n", res.Date)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "1. Edit the post: %s\n", res.Path)
	fmt.Fprintln(w, "2. Fill in the description and other frontmatter fields")
	fmt.Fprintln(w, "3. Write your content")
	fmt.Fprintln(w, "4. When ready to publish, set draft: false")
	return nil
}

func init() {
	rootCmd.AddCommand(newPostCmd)
	newPostCmd.Flags().BoolVar(&commitPost, "commit", false, "Commit the new post to git")
}
