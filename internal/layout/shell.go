// Package layout renders the document shell every page is wrapped in.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/maxburleigh/portfolio/internal/font"
)

const (
	Lang      = "en"
	BodyClass = "antialiased"

	// FontCount is the number of font declarations the root element carries.
	FontCount = 4
)

var (
	ErrEmptyMetadata  = errors.New("metadata title and description are required")
	ErrDuplicateToken = errors.New("duplicate font class token")
	ErrFontCount      = errors.New("wrong number of fonts")
)

const shellTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" class="{{.ClassName}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Metadata.Title}}</title>
<meta name="description" content="{{.Metadata.Description}}">
{{- if .FontHref}}
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link rel="stylesheet" href="{{.FontHref}}">
{{- end}}
{{- range .Stylesheets}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body class="{{.BodyClass}}">{{.Children}}</body>
</html>
`

var tmpl = template.Must(template.New("shell").Parse(shellTemplate))

// Shell is the outermost document structure. It is immutable once built and
// may be rendered from many goroutines.
type Shell struct {
	metadata    Metadata
	className   string
	fontHref    string
	stylesheets []string
}

type shellData struct {
	Lang        string
	ClassName   string
	BodyClass   string
	Metadata    Metadata
	FontHref    string
	Stylesheets []string
	Children    template.HTML
}

// NewShell builds a shell whose root element carries exactly FontCount class
// tokens, one per font, in the given order.
func NewShell(meta Metadata, fonts []*font.Font, stylesheets ...string) (*Shell, error) {
	if meta.Title == "" || meta.Description == "" {
		return nil, ErrEmptyMetadata
	}

	if len(fonts) != FontCount {
		return nil, fmt.Errorf("got %d fonts, want %d: %w", len(fonts), FontCount, ErrFontCount)
	}

	tokens := make([]string, 0, len(fonts))
	seen := make(map[string]struct{}, len(fonts))
	for _, f := range fonts {
		if _, ok := seen[f.ClassName]; ok {
			return nil, fmt.Errorf("font %q token %q: %w", f.Family, f.ClassName, ErrDuplicateToken)
		}
		seen[f.ClassName] = struct{}{}
		tokens = append(tokens, f.ClassName)
	}

	return &Shell{
		metadata:    meta,
		className:   strings.Join(tokens, " "),
		fontHref:    font.Href(fonts...),
		stylesheets: append([]string(nil), stylesheets...),
	}, nil
}

func (s *Shell) Metadata() Metadata {
	return s.metadata
}

// ClassName returns the whitespace-joined font tokens applied to <html>.
func (s *Shell) ClassName() string {
	return s.className
}

// Render writes the document with children placed unmodified inside <body>.
// Nothing is written to w if rendering fails.
func (s *Shell) Render(w io.Writer, children template.HTML) error {
	data := shellData{
		Lang:        Lang,
		ClassName:   s.className,
		BodyClass:   BodyClass,
		Metadata:    s.metadata,
		FontHref:    s.fontHref,
		Stylesheets: s.stylesheets,
		Children:    children,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute shell template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write shell: %w", err)
	}
	return nil
}
