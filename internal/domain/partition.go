package domain

import (
	"strings"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"
)

// LabelAll names the partition that holds every upcoming event.
const LabelAll = "all"

var titleCaser = cases.Title(textlang.English)

// Partition is a named subset of the upcoming events, rendered on its own.
type Partition struct {
	Label  string
	Title  string
	Events []Event
}

// CategoryLabel returns the label of a category partition, e.g. "rust".
func CategoryLabel(c Category) string { return c.Slug() }

// PairLabel returns the label of a category-language partition, e.g. "rust-french".
func PairLabel(c Category, l Language) string { return c.Slug() + "-" + l.Slug() }

// LabelTitle turns a label into its display title: "rust-french" becomes "Rust French".
func LabelTitle(label string) string {
	return titleCaser.String(strings.ReplaceAll(label, "-", " "))
}

// Partitions builds "all", then for each category its own partition followed
// by one partition per language. Every combination is produced, empty or not,
// and membership is always evaluated against the full events slice.
func Partitions(events []Event) []Partition {
	parts := make([]Partition, 0, 1+len(Categories)*(1+len(Languages)))
	parts = append(parts, newPartition(LabelAll, events, func(Event) bool { return true }))

	for _, c := range Categories {
		parts = append(parts, newPartition(CategoryLabel(c), events, func(e Event) bool {
			return e.Category == c
		}))
		for _, l := range Languages {
			parts = append(parts, newPartition(PairLabel(c, l), events, func(e Event) bool {
				return e.Category == c && e.Language == l
			}))
		}
	}
	return parts
}

func newPartition(label string, events []Event, keep func(Event) bool) Partition {
	selected := make([]Event, 0)
	for _, e := range events {
		if keep(e) {
			selected = append(selected, e)
		}
	}
	return Partition{Label: label, Title: LabelTitle(label), Events: selected}
}
