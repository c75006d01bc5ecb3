package router

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is a named set of keywords or phrases checked against
// normalized query text. Matches are word-boundary anchored, so a
// keyword like "pain" does not fire inside "campaign".
type Category struct {
	name     string
	keywords []string
	pattern  *regexp.Regexp
}

// NewCategory compiles a category from its keyword list. Extraction
// returns the keyword occurring earliest in the text; keywords matching
// at the same position resolve to the one declared first.
func NewCategory(name string, keywords []string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name is empty")
	}
	if len(keywords) == 0 {
		return Category{}, fmt.Errorf("category %q has no keywords", name)
	}

	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return Category{}, fmt.Errorf("category %q contains an empty keyword", name)
		}
		quoted[i] = regexp.QuoteMeta(kw)
	}

	pattern, err := regexp.Compile(`\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return Category{}, fmt.Errorf("category %q: %w", name, err)
	}

	return Category{name: name, keywords: keywords, pattern: pattern}, nil
}

func (c Category) Name() string { return c.name }

// Extract returns the first keyword found in text, scanning left to
// right. Text must already be lowercased and trimmed by the caller.
func (c Category) Extract(text string) (string, bool) {
	term := c.pattern.FindString(text)
	return term, term != ""
}

// Contains reports whether any keyword of the category occurs in text.
func (c Category) Contains(text string) bool {
	return c.pattern.MatchString(text)
}
