// Package frontmatter implements the narrow header grammar shared by the
// authoring commands.
//
// A header block opens on the first line of a document with a bare "---"
// line and closes at the next bare "---" line. Every interior line of the
// form "key: value" contributes one entry. The grammar is deliberately
// small:
//
//   - lines without a colon are ignored;
//   - the key is everything before the first colon, trimmed;
//   - the value is everything after it, trimmed, with one matching outer
//     pair of double or single quotes removed;
//   - the bare words true and false become booleans, anything else stays a string;
//   - a repeated key overwrites the earlier value.
//
// Nested structures, lists, multi-line scalars, comments, escapes and
// numbers are not interpreted; such values are kept as literal strings.
package frontmatter

import (
	"strings"
)

// Delimiter is the line that opens and closes a header block.
const Delimiter = "---"

// Record is a parsed header block. Values are either string or bool.
type Record map[string]any

// Extract parses the header block at the start of text.
// ok is false when text does not open with a complete block; that is not
// an error, the document simply has no frontmatter.
func Extract(text string) (rec Record, ok bool) {
	block, _, ok := Split(text)
	if !ok {
		return nil, false
	}
	return Parse(block), true
}

// Split separates the header block from the body. The block excludes both
// delimiter lines; the body starts on the line after the closing delimiter.
// ok is false when there is no complete block, in which case body is text.
func Split(text string) (block, body string, ok bool) {
	first, rest, found := strings.Cut(text, "\n")
	if !found || !isDelimiter(first) {
		return "", text, false
	}

	var lines []string
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		if isDelimiter(line) {
			return strings.Join(lines, "\n"), rest, true
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return "", text, false
}

// Parse interprets the interior lines of a header block.
func Parse(block string) Record {
	rec := make(Record)
	for _, line := range strings.Split(block, "\n") {
		key, raw, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		rec[strings.TrimSpace(key)] = coerce(unquote(strings.TrimSpace(raw)))
	}
	return rec
}

// unquote strips exactly one matching pair of outer quotes.
// A value that is a single quote character becomes empty.
func unquote(v string) string {
	if v == "" {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if first != last || (first != '"' && first != '\'') {
		return v
	}
	if len(v) == 1 {
		return ""
	}
	return v[1 : len(v)-1]
}

func coerce(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}

// isDelimiter accepts "---" with optional trailing blanks or a CR.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == Delimiter
}
