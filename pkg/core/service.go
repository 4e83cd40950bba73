package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shessenauer/samhesson-blog/pkg/frontmatter"
	"github.com/shessenauer/samhesson-blog/pkg/post"
	"github.com/shessenauer/samhesson-blog/pkg/readingtime"
)

// Service handles the authoring operations over a content repository.
type Service struct {
	repo      Repository
	templates TemplateStore
	committer Committer
	logger    *slog.Logger
	now       func() time.Time
	wpm       int
	author    string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTemplates sets the source of the post template used by NewPost.
func WithTemplates(t TemplateStore) ServiceOption {
	return func(s *Service) { s.templates = t }
}

// WithCommitter records every new post in version control.
func WithCommitter(c Committer) ServiceOption {
	return func(s *Service) { s.committer = c }
}

// WithServiceLogger sets the logger. A nil logger discards output.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used to date new posts.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithWordsPerMinute sets the reading speed for reading time estimates.
func WithWordsPerMinute(wpm int) ServiceOption {
	return func(s *Service) { s.wpm = wpm }
}

// WithAuthor sets the author the schema check assumes when a post names none.
func WithAuthor(author string) ServiceOption {
	return func(s *Service) { s.author = author }
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		wpm:    readingtime.DefaultWordsPerMinute,
		author: post.DefaultAuthor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListDrafts scans the content directory and returns an entry for every
// document flagged as a draft, in enumeration order.
// Documents without a header block are not candidates and are skipped.
func (s *Service) ListDrafts(ctx context.Context, filter DraftFilter) (DraftReport, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return DraftReport{}, err
	}

	report := DraftReport{Documents: len(docs)}
	for _, doc := range docs {
		rec, ok := frontmatter.Extract(doc.Content)
		if !ok {
			s.logger.Debug("skipping document without frontmatter", "id", doc.ID)
			continue
		}

		meta := Metadata(rec)
		if !isDraft(meta, filter) {
			continue
		}

		report.Drafts = append(report.Drafts, Draft{
			File:     doc.ID,
			Title:    meta.String("title", DefaultTitle),
			Category: meta.String("category", DefaultCategory),
			PubDate:  meta.String("pubDate", DefaultPubDate),
			Created:  doc.CreatedAt,
		})
	}

	s.logger.Debug("draft scan complete", "documents", report.Documents, "drafts", len(report.Drafts))
	return report, nil
}

// isDraft only accepts an explicit boolean true, unless the filter asks to
// follow the schema default for a missing key.
func isDraft(meta Metadata, filter DraftFilter) bool {
	if v, ok := meta.Bool("draft"); ok {
		return v
	}
	return filter.IncludeUnset && !meta.Has("draft")
}

// NewPost scaffolds a post from the template.
//
// Workflow:
//  1. Derive the slug from the title.
//  2. Refuse if a document with that slug already exists.
//  3. Read the template and substitute the title and today's date.
//  4. Create the document (never overwriting) and optionally commit it.
func (s *Service) NewPost(ctx context.Context, title string) (NewPostResult, error) {
	if strings.TrimSpace(title) == "" {
		return NewPostResult{}, ErrMissingTitle
	}

	slug := post.Slugify(title)
	if slug == "" {
		return NewPostResult{}, fmt.Errorf("%w: %q", ErrInvalidSlug, title)
	}

	exists, err := s.repo.Exists(ctx, slug)
	if err != nil {
		return NewPostResult{}, err
	}
	if exists {
		return NewPostResult{}, fmt.Errorf("%w: %q", ErrPostExists, slug)
	}

	if s.templates == nil {
		return NewPostResult{}, fmt.Errorf("%w: no template configured", ErrTemplate)
	}
	tpl, err := s.templates.Template(ctx)
	if err != nil {
		return NewPostResult{}, err
	}

	now := s.now()
	path, err := s.repo.Create(ctx, Document{
		ID:      slug,
		Content: post.Render(tpl, title, now),
	})
	if err != nil {
		return NewPostResult{}, err
	}
	s.logger.Debug("post created", "path", path, "slug", slug)

	if s.committer != nil {
		if err := s.committer.Commit(ctx, path, "docs(blog): draft "+slug); err != nil {
			return NewPostResult{}, fmt.Errorf("post created at %s but commit failed: %w", path, err)
		}
	}

	return NewPostResult{
		Path:  path,
		Title: title,
		Slug:  slug,
		Date:  post.FormatDate(now),
	}, nil
}

// ReadingTime estimates the reading time of a document's body.
// The header block, when present, is not counted.
func (s *Service) ReadingTime(ctx context.Context, id string) (ReadingTime, error) {
	if id == "" {
		return ReadingTime{}, errors.New("document ID cannot be empty")
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return ReadingTime{}, err
	}

	_, body, _ := frontmatter.Split(doc.Content)
	words := readingtime.CountWords(body)
	minutes := readingtime.Minutes(words, s.wpm)

	return ReadingTime{
		ID:      doc.ID,
		Words:   words,
		Minutes: minutes,
		Label:   readingtime.Format(minutes),
	}, nil
}

// Check validates every document's frontmatter against the content schema.
// Results are returned for all documents, valid or not.
func (s *Service) Check(ctx context.Context) ([]CheckResult, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]CheckResult, 0, len(docs))
	for _, doc := range docs {
		res := CheckResult{ID: doc.ID}

		block, _, ok := frontmatter.Split(doc.Content)
		if !ok {
			res.Problems = []string{"missing frontmatter block"}
			results = append(results, res)
			continue
		}

		p, err := post.Decode(block, s.author)
		if err != nil {
			res.Problems = []string{err.Error()}
		} else {
			res.Problems = post.Validate(p)
		}
		results = append(results, res)
	}
	return results, nil
}
