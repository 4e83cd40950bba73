package frontmatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format writes rec back as a header block, delimiters included.
// Keys are emitted in sorted order. Strings are always double-quoted so
// that Extract(Format(r)) yields r for any record Extract can produce;
// a string holding the bare word true or false is the one value that
// cannot survive the trip, since Extract never yields one.
func Format(rec Record) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		switch v := rec[k].(type) {
		case bool:
			b.WriteString(strconv.FormatBool(v))
		case string:
			b.WriteString(`"` + v + `"`)
		default:
			b.WriteString(`"` + fmt.Sprint(v) + `"`)
		}
		b.WriteString("\n")
	}
	b.WriteString(Delimiter + "\n")
	return b.String()
}
