package frontmatter

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Record
		wantOK bool
	}{
		{
			name:   "Basic Frontmatter",
			input:  "---\ntitle: Hello World\ndraft: true\n---\n# Body",
			want:   Record{"title": "Hello World", "draft": true},
			wantOK: true,
		},
		{
			name:   "No Frontmatter",
			input:  "# Just Markdown",
			wantOK: false,
		},
		{
			name:   "Empty File",
			input:  "",
			wantOK: false,
		},
		{
			name:   "Unclosed Block",
			input:  "---\ntitle: Unclosed\nContent",
			wantOK: false,
		},
		{
			name:   "Opening Delimiter Not On First Line",
			input:  "\n---\ntitle: Late\n---\n",
			wantOK: false,
		},
		{
			name:   "Empty Block",
			input:  "---\n---\nbody",
			want:   Record{},
			wantOK: true,
		},
		{
			name:   "Closing Delimiter At EOF",
			input:  "---\ntitle: x\n---",
			want:   Record{"title": "x"},
			wantOK: true,
		},
		{
			name:   "CRLF Line Endings",
			input:  "---\r\ntitle: Windows\r\ndraft: false\r\n---\r\nbody",
			want:   Record{"title": "Windows", "draft": false},
			wantOK: true,
		},
		{
			name:   "Only First Block Is Captured",
			input:  "---\na: 1\n---\n---\nb: 2\n---\n",
			want:   Record{"a": "1"},
			wantOK: true,
		},
		{
			name:   "Closing Delimiter Must Be Bare",
			input:  "---\na: 1\n----\nb: 2\n---\n",
			want:   Record{"a": "1", "b": "2"},
			wantOK: true,
		},
		{
			name:   "Lines Without Colon Are Skipped",
			input:  "---\njust text\ntitle: T\n---\n",
			want:   Record{"title": "T"},
			wantOK: true,
		},
		{
			name:   "Split At First Colon",
			input:  "---\ntime: 10:30:00\n---\n",
			want:   Record{"time": "10:30:00"},
			wantOK: true,
		},
		{
			name:   "Quotes Stripped Once",
			input:  "---\na: \"quoted\"\nb: 'single'\nc: \"\"nested\"\"\nd: \"mismatch'\ne: \"\n---\n",
			want:   Record{"a": "quoted", "b": "single", "c": "\"nested\"", "d": "\"mismatch'", "e": ""},
			wantOK: true,
		},
		{
			name:   "Lone Quote Becomes Empty",
			input:  "---\nsingle: '\ndouble: \"\n---\n",
			want:   Record{"single": "", "double": ""},
			wantOK: true,
		},
		{
			name:   "Quoted Booleans Are Coerced",
			input:  "---\ndraft: \"true\"\nfeatured: 'false'\n---\n",
			want:   Record{"draft": true, "featured": false},
			wantOK: true,
		},
		{
			name:   "Coercion Is Case Sensitive",
			input:  "---\ndraft: True\nother: FALSE\n---\n",
			want:   Record{"draft": "True", "other": "FALSE"},
			wantOK: true,
		},
		{
			name:   "Unsupported Syntax Kept Literally",
			input:  "---\ntags: [\"go\", \"blog\"]\ncount: 42\nnote: value # comment\n---\n",
			want:   Record{"tags": "[\"go\", \"blog\"]", "count": "42", "note": "value # comment"},
			wantOK: true,
		},
		{
			name:   "Duplicate Key Last Wins",
			input:  "---\ntitle: First\ntitle: Second\n---\n",
			want:   Record{"title": "Second"},
			wantOK: true,
		},
		{
			name:   "Empty Value",
			input:  "---\ncategory:\n---\n",
			want:   Record{"category": ""},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if got != nil {
					t.Errorf("Extract() = %v, want nil on non-match", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	block, body, ok := Split("---\ntitle: T\n---\nLine 1\nLine 2")
	if !ok {
		t.Fatal("expected a header block")
	}
	if block != "title: T" {
		t.Errorf("block = %q", block)
	}
	if body != "Line 1\nLine 2" {
		t.Errorf("body = %q", body)
	}

	_, body, ok = Split("no header")
	if ok || body != "no header" {
		t.Errorf("Split() on plain text = (%q, %v)", body, ok)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"---\ntitle: Hello\ndraft: true\n---\n",
		"---\ntitle: \"\"quoted\"\"\nfeatured: 'false'\n---\n",
		"---\nempty:\n: no key\nurl: https://example.com/a:b\n---\n",
		"---\ntitle: a\"\ntitle: b'\n---\n",
	}

	for _, in := range inputs {
		first, ok := Extract(in)
		if !ok {
			t.Fatalf("Extract(%q) failed", in)
		}
		second, ok := Extract(Format(first))
		if !ok {
			t.Fatalf("Extract(Format()) failed for %q", in)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip mismatch for %q:\n first  %#v\n second %#v", in, first, second)
		}
	}
}

func TestFormat_SortedKeys(t *testing.T) {
	got := Format(Record{"b": "2", "a": true})
	want := "---\na: true\nb: \"2\"\n---\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
