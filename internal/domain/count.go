package domain

import (
	"slices"
	"sort"
)

// CountEntry is one row of the index page.
type CountEntry struct {
	Label string
	Title string
	Count int
}

// Tally accumulates per-label counts and remembers the order labels were
// first added. It is built fresh for each run.
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments label by n, registering it on first use.
func (t *Tally) Add(label string, n int) {
	if _, ok := t.counts[label]; !ok {
		t.order = append(t.order, label)
	}
	t.counts[label] += n
}

// Len reports the number of distinct labels.
func (t *Tally) Len() int { return len(t.order) }

// Ranked orders labels by count, highest first. It stable-sorts ascending
// and then reverses the whole list, so labels with equal counts come out in
// reverse insertion order. Published output depends on that tie order.
func (t *Tally) Ranked() []CountEntry {
	entries := make([]CountEntry, 0, len(t.order))
	for _, label := range t.order {
		entries = append(entries, CountEntry{Label: label, Title: LabelTitle(label), Count: t.counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count < entries[j].Count })
	slices.Reverse(entries)
	return entries
}

// CountPartitions tallies partitions in the order given and ranks them.
func CountPartitions(parts []Partition) []CountEntry {
	t := NewTally()
	for _, p := range parts {
		t.Add(p.Label, len(p.Events))
	}
	return t.Ranked()
}
