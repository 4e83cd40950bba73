// Package blog is the composition root for the blog authoring toolkit.
//
// It connects the core operations (draft listing, post scaffolding, reading
// time and content checks) with the filesystem and git adapters.
//
// Layout:
//
//   - pkg/frontmatter: the narrow "key: value" header grammar.
//   - pkg/readingtime: markup stripping and reading time estimates.
//   - pkg/post: slugs, the post template and the content schema.
//   - pkg/core: the Service and its ports.
//   - pkg/adapters/fs: the content directory.
//   - pkg/report: draft report renderers.
//
// Usage:
//
//	svc, err := blog.New(".", blog.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	res, err := svc.NewPost(ctx, "My First Post")
package blog
