// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"
)

// usagePageTemplate renders the usage summary as a standalone HTML
// page. All values pass through html/template's contextual escaping,
// so stored prompt text cannot inject markup.
const usagePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Mentor Usage Report</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1a1a2e; }
  h1 { border-bottom: 2px solid #16213e; padding-bottom: 0.5rem; }
  table { border-collapse: collapse; width: 100%; margin: 1rem 0 2rem; }
  th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
  th { background: #16213e; color: #fff; }
  tr:nth-child(even) { background: #f4f4f8; }
  .meta { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Mentor Usage Report</h1>
<p class="meta">Generated {{formatDateTime .GeneratedAt}} &middot; {{.TotalRequests}} unique requests</p>

<h2>Requests by Category</h2>
{{if .ByCategory}}
<table>
<tr><th>Category</th><th>Count</th></tr>
{{range .ByCategory}}<tr><td>{{.Category}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{else}}<p>No requests recorded yet.</p>{{end}}

<h2>Top Algorithm Selections</h2>
{{if .ByAlgorithm}}
<table>
<tr><th>Algorithm</th><th>Count</th></tr>
{{range .ByAlgorithm}}<tr><td>{{.Algorithm}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{else}}<p>No selections recorded yet.</p>{{end}}

{{if .OldestAt}}<p class="meta">First request {{formatDateTime .OldestAt}} &middot; latest {{formatDateTime .NewestAt}}</p>{{end}}
</body>
</html>
`

// HTMLRenderer renders usage reports as HTML pages.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the page template. Parsing failure is a
// programming error and panics at startup rather than at request time.
func NewHTMLRenderer() *HTMLRenderer {
	funcMap := template.FuncMap{
		"formatDateTime": func(t any) string {
			switch v := t.(type) {
			case time.Time:
				return v.Format("Jan 2, 2006 15:04 UTC")
			case *time.Time:
				if v == nil {
					return ""
				}
				return v.Format("Jan 2, 2006 15:04 UTC")
			default:
				return fmt.Sprint(t)
			}
		},
	}
	return &HTMLRenderer{
		tmpl: template.Must(template.New("usage").Funcs(funcMap).Parse(usagePageTemplate)),
	}
}

// RenderUsage builds the usage report and renders it to HTML.
func (r *HTMLRenderer) RenderUsage(ctx context.Context, b *Builder) ([]byte, error) {
	usage, err := b.Usage(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, usage); err != nil {
		return nil, fmt.Errorf("render usage page: %w", err)
	}
	return buf.Bytes(), nil
}
