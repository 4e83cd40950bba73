package post

import (
	_ "embed"
	"strings"
	"time"
)

// Placeholder tokens recognised in a post template.
const (
	TitleToken = "{{title}}"
	DateToken  = "{{currentDate}}"
)

// DateLayout is the calendar date format used for new posts.
const DateLayout = "2006-01-02"

// DefaultTemplate is the template written by `blog init`.
//
//go:embed templates/post-template.md
var DefaultTemplate string

// FormatDate renders t as a UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Render substitutes every title placeholder, then every date placeholder.
// A date token inside the title is therefore expanded too.
func Render(tpl, title string, now time.Time) string {
	out := strings.ReplaceAll(tpl, TitleToken, title)
	return strings.ReplaceAll(out, DateToken, FormatDate(now))
}
