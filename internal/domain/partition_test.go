package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	base := time.Date(2024, 6, 6, 18, 0, 0, 0, time.UTC)
	return []Event{
		{Title: "r1", Category: Rust, Language: English, Start: base},
		{Title: "r2", Category: Rust, Language: French, Start: base},
		{Title: "r3", Category: Rust, Language: English, Start: base},
		{Title: "p1", Category: Python, Language: English, Start: base},
		{Title: "p2", Category: Python, Language: French, Start: base},
	}
}

func partitionByLabel(parts []Partition) map[string]Partition {
	m := make(map[string]Partition, len(parts))
	for _, p := range parts {
		m[p.Label] = p
	}
	return m
}

func TestPartitions_Labels(t *testing.T) {
	parts := Partitions(nil)

	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{
		"all",
		"perl", "perl-english", "perl-french", "perl-hebrew",
		"python", "python-english", "python-french", "python-hebrew",
		"rust", "rust-english", "rust-french", "rust-hebrew",
	}, labels)
	for _, p := range parts {
		assert.NotNil(t, p.Events, p.Label)
		assert.Empty(t, p.Events, p.Label)
	}
}

func TestPartitions_CompleteRefinement(t *testing.T) {
	events := sampleEvents()
	parts := partitionByLabel(Partitions(events))

	assert.Len(t, parts[LabelAll].Events, len(events))

	for _, e := range events {
		categoryHits, pairHits := 0, 0
		for _, c := range Categories {
			for _, pe := range parts[CategoryLabel(c)].Events {
				if pe.Title == e.Title {
					categoryHits++
				}
			}
			for _, l := range Languages {
				for _, pe := range parts[PairLabel(c, l)].Events {
					if pe.Title == e.Title {
						pairHits++
					}
				}
			}
		}
		assert.Equal(t, 1, categoryHits, e.Title)
		assert.Equal(t, 1, pairHits, e.Title)
	}
}

func TestPartitions_PreservesIngestionOrder(t *testing.T) {
	parts := partitionByLabel(Partitions(sampleEvents()))

	titles := func(p Partition) []string {
		out := make([]string, 0, len(p.Events))
		for _, e := range p.Events {
			out = append(out, e.Title)
		}
		return out
	}

	assert.Equal(t, []string{"r1", "r2", "r3", "p1", "p2"}, titles(parts["all"]))
	assert.Equal(t, []string{"r1", "r2", "r3"}, titles(parts["rust"]))
	assert.Equal(t, []string{"r1", "r3"}, titles(parts["rust-english"]))
	assert.Equal(t, []string{"p2"}, titles(parts["python-french"]))
	assert.Empty(t, parts["perl"].Events)
}

func TestLabelTitle(t *testing.T) {
	assert.Equal(t, "All", LabelTitle(LabelAll))
	assert.Equal(t, "Rust", LabelTitle("rust"))
	assert.Equal(t, "Python Hebrew", LabelTitle(PairLabel(Python, Hebrew)))

	parts := partitionByLabel(Partitions(nil))
	require.Contains(t, parts, "perl-french")
	assert.Equal(t, "Perl French", parts["perl-french"].Title)
}
