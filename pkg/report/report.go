// Package report renders draft reports for the terminal and for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/shessenauer/samhesson-blog/pkg/core"
)

// CreatedLayout is the layout used for a draft's creation date.
const CreatedLayout = "2006-01-02"

// DefaultFormat is the human-readable report.
const DefaultFormat = "text"

// Renderer writes a draft report in one output format.
type Renderer func(w io.Writer, r core.DraftReport) error

var renderers = map[string]Renderer{
	"text":  Text,
	"table": Table,
	"json":  JSON,
	"yaml":  YAML,
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the report using the named format.
func Render(w io.Writer, format string, r core.DraftReport) error {
	if format == "" {
		format = DefaultFormat
	}
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return render(w, r)
}

// Text writes the numbered draft report.
func Text(w io.Writer, r core.DraftReport) error {
	var b strings.Builder

	switch {
	case r.Documents == 0:
		b.WriteString("No blog posts found.\n")
	case len(r.Drafts) == 0:
		b.WriteString("✅ No draft posts found. All posts are published!\n")
	default:
		fmt.Fprintf(&b, "\n📝 Current Drafts (%d):\n\n", len(r.Drafts))
		for i, d := range r.Drafts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d.File)
			fmt.Fprintf(&b, "   Title: %s\n", d.Title)
			fmt.Fprintf(&b, "   Category: %s\n", d.Category)
			fmt.Fprintf(&b, "   Pub Date: %s\n", d.PubDate)
			fmt.Fprintf(&b, "   Created: %s\n", created(d))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Total: %d draft %s\n\n", len(r.Drafts), plural(len(r.Drafts), "post", "posts"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes the drafts as a bordered table.
func Table(w io.Writer, r core.DraftReport) error {
	if len(r.Drafts) == 0 {
		return Text(w, r)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "File", "Title", "Category", "Pub Date", "Created"})
	for i, d := range r.Drafts {
		t.AppendRow(table.Row{i + 1, d.File, d.Title, d.Category, d.PubDate, created(d)})
	}
	t.AppendFooter(table.Row{"", "Total", strconv.Itoa(len(r.Drafts)), "", "", ""})
	t.Render()
	return nil
}

// JSON writes the drafts as an indented JSON array.
func JSON(w io.Writer, r core.DraftReport) error {
	drafts := r.Drafts
	if drafts == nil {
		drafts = []core.Draft{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(drafts)
}

// YAML writes the drafts as a YAML sequence.
func YAML(w io.Writer, r core.DraftReport) error {
	drafts := r.Drafts
	if drafts == nil {
		drafts = []core.Draft{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(drafts); err != nil {
		return err
	}
	return enc.Close()
}

func created(d core.Draft) string {
	if d.Created.IsZero() {
		return "unknown"
	}
	return d.Created.Local().Format(CreatedLayout)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
