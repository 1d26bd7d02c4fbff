package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*
var embedded embed.FS

// Template file names looked up in the template filesystem.
const (
	ListHTMLTemplate  = "list.html"
	ListTextTemplate  = "list.txt"
	DigestTemplate    = "digest.md"
	IndexHTMLTemplate = "index.html"
)

var funcs = map[string]any{
	"rfc3339": func(t time.Time) string { return t.Format(time.RFC3339) },
	"mdtext":  mdText.Replace,
	"mdurl":   mdURL.Replace,
}

// mdText backslash-escapes the punctuation that would open or close Markdown
// markup inside link text.
var mdText = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"<", `\<`,
	">", `\>`,
	"\n", " ",
)

// mdURL keeps a link destination inside its parentheses.
var mdURL = strings.NewReplacer(
	`\`, `\\`,
	"(", `\(`,
	")", `\)`,
	"<", "%3C",
	">", "%3E",
	" ", "%20",
	"\n", "",
)

// Templates is the parsed template set. HTML templates escape their input;
// text templates do not, and Markdown templates escape through mdtext and
// mdurl.
type Templates struct {
	listHTML  *htmltemplate.Template
	indexHTML *htmltemplate.Template
	listText  *texttemplate.Template
	digest    *texttemplate.Template
}

// DefaultTemplates returns the template set compiled into the binary.
func DefaultTemplates() (*Templates, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return LoadTemplates(sub)
}

// LoadTemplates parses the four templates from fsys.
func LoadTemplates(fsys fs.FS) (*Templates, error) {
	var (
		t   Templates
		err error
	)
	if t.listHTML, err = parseHTML(fsys, ListHTMLTemplate); err != nil {
		return nil, err
	}
	if t.indexHTML, err = parseHTML(fsys, IndexHTMLTemplate); err != nil {
		return nil, err
	}
	if t.listText, err = parseText(fsys, ListTextTemplate); err != nil {
		return nil, err
	}
	if t.digest, err = parseText(fsys, DigestTemplate); err != nil {
		return nil, err
	}
	return &t, nil
}

func parseHTML(fsys fs.FS, name string) (*htmltemplate.Template, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	tmpl, err := htmltemplate.New(name).Funcs(funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tmpl, nil
}

func parseText(fsys fs.FS, name string) (*texttemplate.Template, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	tmpl, err := texttemplate.New(name).Funcs(funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// executor is satisfied by both html/template and text/template.
type executor interface {
	Execute(w io.Writer, data any) error
}

func execute(tmpl executor, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
