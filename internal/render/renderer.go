package render

import (
	"time"

	"github.com/couchcryptid/virtual-events/internal/domain"
)

// Artifact extensions, in the order RenderPartition returns them.
const (
	ExtHTML     = ".html"
	ExtText     = ".txt"
	ExtICal     = ".ical"
	ExtMarkdown = ".md"
)

// IndexName is the file name of the summary page at the output root.
const IndexName = "index.html"

// GeneratedLayout formats the generation timestamp shown on every page.
const GeneratedLayout = "2006-01-02 15:04:05 UTC"

// Artifact is one rendered output file, named relative to the output root.
type Artifact struct {
	Name string
	Data []byte
}

// Renderer turns partitions and counts into artifacts. It is a pure
// function of its inputs: nothing is written here.
type Renderer struct {
	templates *Templates
	siteTitle string
}

// New creates a Renderer over a parsed template set.
func New(templates *Templates, siteTitle string) *Renderer {
	return &Renderer{templates: templates, siteTitle: siteTitle}
}

type listData struct {
	SiteTitle string
	Label     string
	Title     string
	Month     string
	Generated string
	Now       time.Time
	Count     int
	Events    []domain.Event
}

type indexData struct {
	SiteTitle string
	Generated string
	Now       time.Time
	Counts    []domain.CountEntry
}

// RenderPartition renders the HTML list, text list, calendar feed and
// Markdown digest of one partition, in that order. Empty partitions still
// produce all four artifacts.
func (r *Renderer) RenderPartition(p domain.Partition, now time.Time) ([]Artifact, error) {
	data := listData{
		SiteTitle: r.siteTitle,
		Label:     p.Label,
		Title:     p.Title,
		Month:     now.UTC().Format("January 2006"),
		Generated: now.UTC().Format(GeneratedLayout),
		Now:       now,
		Count:     len(p.Events),
		Events:    p.Events,
	}

	html, err := execute(r.templates.listHTML, ListHTMLTemplate, data)
	if err != nil {
		return nil, err
	}
	text, err := execute(r.templates.listText, ListTextTemplate, data)
	if err != nil {
		return nil, err
	}
	md, err := execute(r.templates.digest, DigestTemplate, data)
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Name: p.Label + ExtHTML, Data: html},
		{Name: p.Label + ExtText, Data: text},
		{Name: p.Label + ExtICal, Data: buildCalendar(p, now)},
		{Name: p.Label + ExtMarkdown, Data: md},
	}, nil
}

// RenderIndex renders the summary page from the ranked counts.
func (r *Renderer) RenderIndex(counts []domain.CountEntry, now time.Time) (Artifact, error) {
	html, err := execute(r.templates.indexHTML, IndexHTMLTemplate, indexData{
		SiteTitle: r.siteTitle,
		Generated: now.UTC().Format(GeneratedLayout),
		Now:       now,
		Counts:    counts,
	})
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: IndexName, Data: html}, nil
}
