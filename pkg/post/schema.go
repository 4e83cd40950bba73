package post

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultAuthor is credited when a post does not name its author.
const DefaultAuthor = "Sam Hesson"

// Post is the content schema every blog document must satisfy at build time.
// Required strings must be present but may be empty. Unknown keys are ignored.
type Post struct {
	Title       *string `yaml:"title" validate:"required"`
	Description *string `yaml:"description" validate:"required"`
	PubDate     *Date   `yaml:"pubDate" validate:"required"`
	Draft       *bool   `yaml:"draft"`

	Excerpt      string   `yaml:"excerpt"`
	CanonicalURL string   `yaml:"canonicalUrl" validate:"omitempty,url"`
	MetaKeywords []string `yaml:"metaKeywords"`

	Author       string   `yaml:"author"`
	Category     string   `yaml:"category"`
	Series       string   `yaml:"series"`
	SeriesOrder  *float64 `yaml:"seriesOrder"`
	RelatedPosts []string `yaml:"relatedPosts"`

	HeroImage    string `yaml:"heroImage"`
	HeroImageAlt string `yaml:"heroImageAlt"`
	Featured     bool   `yaml:"featured"`

	Tags []string `yaml:"tags"`

	LastModified         *Date    `yaml:"lastModified"`
	EstimatedReadingTime *float64 `yaml:"estimatedReadingTime"`
}

// IsDraft applies the schema default: a post without a draft flag is a draft.
func (p Post) IsDraft() bool {
	return p.Draft == nil || *p.Draft
}

// Date is a calendar date that accepts the loose layouts authors tend to write.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006/01/02",
}

// ParseDate tries each supported layout in turn.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// Decode parses a header block with a full YAML parser into a Post and
// fills in the schema defaults.
func Decode(block string, author string) (Post, error) {
	var p Post
	if err := yaml.Unmarshal([]byte(block), &p); err != nil {
		return Post{}, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if p.Author == "" {
		p.Author = author
		if p.Author == "" {
			p.Author = DefaultAuthor
		}
	}
	return p, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks p against the schema constraints and returns one message
// per violated field, in field order. A nil slice means p is valid.
func Validate(p Post) []string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return problems
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Post.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
