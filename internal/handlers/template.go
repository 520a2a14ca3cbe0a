package handlers

import "html/template"

// pageTemplate renders the table page. The three feed states are
// mutually exclusive: loading hint, error line, or the table.
var pageTemplate = template.Must(template.New("movies.tmpl").Parse(moviesPage))

const moviesPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .AppName }}</title>
  <style>
    body { font-family: "Helvetica Neue", Arial, sans-serif; background-color: #f7f9fc; color: #333; margin: 0; padding: 24px; }
    h1 { color: #4a90e2; margin-top: 0; }
    table { border-collapse: collapse; width: 100%; background-color: #fff; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
    th, td { border-bottom: 1px solid #e0e6ed; padding: 10px 12px; text-align: left; vertical-align: middle; }
    th { background-color: #f0f4f8; }
    th a { color: #4a90e2; text-decoration: none; }
    td img { display: block; }
    .error { color: #c0392b; font-weight: 600; }
    .loading { color: #666; }
    .feed-info { margin-top: 16px; color: #888; font-size: 0.85rem; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
{{- if eq .State "pending" }}
  <p class="loading">Loading...</p>
{{- else if eq .State "error" }}
  <p class="error">Error: {{ .ErrorMessage }}</p>
{{- else }}
  <table>
    <thead>
      <tr>
{{- range .Table.Headers }}
        <th id="col-{{ .ID }}">{{ if .Sortable }}<a href="/?sort={{ .SortLink }}">{{ .Label }}</a>{{ else }}{{ .Label }}{{ end }}</th>
{{- end }}
      </tr>
    </thead>
    <tbody>
{{- range .Table.Rows }}
      <tr data-key="{{ .Key }}">
{{- range .Cells }}
        <td data-key="{{ .Key }}">
          {{- if .ImageURL -}}
          <img src="{{ .ImageURL }}" alt="{{ .Text }}" width="100">
          {{- else if .Href -}}
          <a href="{{ .Href }}" target="_blank" rel="noopener noreferrer">{{ if .Bold }}<strong>{{ .Text }}</strong>{{ else }}{{ .Text }}{{ end }}</a>
          {{- else if .Tooltip -}}
          <span title="{{ .Tooltip }}">{{ .Text }}</span>
          {{- else if .Bold -}}
          <strong>{{ .Text }}</strong>
          {{- else -}}
          {{ .Text }}
          {{- end -}}
        </td>
{{- end }}
      </tr>
{{- end }}
    </tbody>
  </table>
{{- if .LastUpdate }}
  <p class="feed-info">Feed updated: {{ .LastUpdate }}</p>
{{- end }}
{{- end }}
</body>
</html>
`
