package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is the topical family an event belongs to.
type Category int

const (
	Perl Category = iota
	Python
	Rust
)

// Categories lists every category in declaration order. Partitioning and
// counting iterate this slice, so a new category only needs a constant, an
// entry here, and a name below.
var Categories = []Category{Perl, Python, Rust}

var categoryNames = map[Category]string{
	Perl:   "Perl",
	Python: "Python",
	Rust:   "Rust",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Slug is the lowercase form used in partition labels and file names.
func (c Category) Slug() string { return strings.ToLower(c.String()) }

// ParseCategory matches a source value against the category names. Matching
// is case-sensitive: "rust" is rejected.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Language is the spoken language of an event.
type Language int

const (
	English Language = iota
	French
	Hebrew
)

// Languages lists every language in declaration order.
var Languages = []Language{English, French, Hebrew}

var languageNames = map[Language]string{
	English: "English",
	French:  "French",
	Hebrew:  "Hebrew",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Slug is the lowercase form used in partition labels and file names.
func (l Language) Slug() string { return strings.ToLower(l.String()) }

// ParseLanguage matches a source value against the language names
// case-sensitively.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if languageNames[l] == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

// LocalTimes holds the start instant formatted for each display zone.
type LocalTimes struct {
	UTC string
	EST string
	PST string
	NZL string
}

// Event is one validated virtual event. Values are treated as immutable:
// stages that derive data return modified copies.
type Event struct {
	Title    string
	URL      string
	Name     string
	Address  string
	Language Language
	Category Category
	Start    time.Time

	// Times is empty until the event passes through Localize.
	Times LocalTimes
}

// Localized reports whether display times have been attached.
func (e Event) Localized() bool { return e.Times.UTC != "" }
