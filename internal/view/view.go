// Package view builds the table view model from a feed snapshot: a
// fixed ordered column set, row filtering and sorting, and per-cell
// rendering. The feed snapshot itself is never mutated; every build
// projects a fresh filtered copy.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/amaumene/gotvmovies/internal/models"
)

// Sort keys accepted by Build. A leading "-" reverses the order.
const (
	SortStartAsc  = "start"
	SortStartDesc = "-start"
)

var sortSafelist = []string{SortStartAsc, SortStartDesc}

// Cell is one rendered table cell.
type Cell struct {
	Key      string `json:"key"`
	Text     string `json:"text,omitempty"`
	Bold     bool   `json:"bold,omitempty"`
	Href     string `json:"href,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
}

// Row is one movie in the current projection. Key is stable across
// rebuilds of the same broadcast.
type Row struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}

// Header is one column heading.
type Header struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	SortLink string `json:"sortLink,omitempty"`
}

// Table is the complete view model handed to renderers. Headers are
// always present, even when Rows is empty.
type Table struct {
	Headers []Header `json:"headers"`
	Rows    []Row    `json:"rows"`
	Sort    string   `json:"sort"`
}

// Options control one build of the table projection.
type Options struct {
	// Sort is a safelisted sort key; anything else falls back to
	// SortStartAsc.
	Sort string
	// Filters maps column IDs to filter values. An empty value leaves
	// that column's filter inactive.
	Filters map[string]string
	// Now is the evaluation instant for time-based filters. It is
	// captured once per build, so every row sees the same clock.
	Now time.Time
	// Locale selects the date formats for time cells.
	Locale language.Tag
}

// RenderContext carries per-build state into the cell renderers.
type RenderContext struct {
	Now    time.Time
	Locale language.Tag
}

// DefaultOptions returns the projection options of a plain page load:
// chronological order with the recent-start filter active.
func DefaultOptions(now time.Time, locale language.Tag) Options {
	return Options{
		Sort: SortStartAsc,
		Filters: map[string]string{
			ColumnStart: RecentFilterValue,
		},
		Now:    now,
		Locale: locale,
	}
}

// NormalizeSort maps arbitrary input to a safelisted sort key.
func NormalizeSort(s string) string {
	for _, safe := range sortSafelist {
		if s == safe {
			return s
		}
	}
	return SortStartAsc
}

// Build computes the table projection for one render pass: filter,
// then sort, then project every surviving movie through the column
// renderers.
func Build(movies []models.Movie, opts Options) Table {
	cols := Columns()
	opts.Sort = NormalizeSort(opts.Sort)

	projected := filterMovies(cols, movies, opts)
	sortMovies(projected, opts.Sort)

	table := Table{
		Headers: make([]Header, 0, len(cols)),
		Rows:    make([]Row, 0, len(projected)),
		Sort:    opts.Sort,
	}
	for _, col := range cols {
		table.Headers = append(table.Headers, Header{
			ID:       col.ID,
			Label:    col.Label,
			Sortable: col.Sortable,
			SortLink: sortLink(col, opts.Sort),
		})
	}

	rc := RenderContext{Now: opts.Now, Locale: opts.Locale}
	for _, m := range projected {
		table.Rows = append(table.Rows, buildRow(cols, m, rc))
	}
	return table
}

// filterMovies applies every active column filter. A filter is active
// only when a non-empty value is set for its column; the conjunction of
// all active filters decides visibility.
func filterMovies(cols []Column, movies []models.Movie, opts Options) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if movieVisible(cols, m, opts) {
			out = append(out, m)
		}
	}
	return out
}

func movieVisible(cols []Column, m models.Movie, opts Options) bool {
	for _, col := range cols {
		if col.Filter == nil {
			continue
		}
		value := opts.Filters[col.ID]
		if value == "" {
			continue
		}
		if !col.Filter(m, value, opts.Now) {
			return false
		}
	}
	return true
}

// sortMovies orders movies chronologically by start time. Timestamps
// that do not parse sort as the zero time, so malformed rows surface
// first in ascending order instead of disappearing.
func sortMovies(movies []models.Movie, sortKey string) {
	desc := strings.HasPrefix(sortKey, "-")
	sort.SliceStable(movies, func(i, j int) bool {
		ti, _ := ParseFeedTime(movies[i].StartDateTime)
		tj, _ := ParseFeedTime(movies[j].StartDateTime)
		if desc {
			return tj.Before(ti)
		}
		return ti.Before(tj)
	})
}

func buildRow(cols []Column, m models.Movie, rc RenderContext) Row {
	key := RowKey(m)
	row := Row{
		Key:   key,
		Cells: make([]Cell, 0, len(cols)),
	}
	for _, col := range cols {
		cell := renderCell(col, m, rc)
		cell.Key = key + "|" + col.ID
		row.Cells = append(row.Cells, cell)
	}
	return row
}

func renderCell(col Column, m models.Movie, rc RenderContext) Cell {
	if col.Render != nil {
		return col.Render(m, rc)
	}
	return Cell{Text: col.Accessor(m)}
}

// RowKey is the stable identity of one broadcast. A channel never airs
// two movies at the same instant, so channel plus start time is unique.
func RowKey(m models.Movie) string {
	return m.ChannelID + "|" + m.StartDateTime
}

// sortLink is the sort key a click on this header applies. Clicking the
// column currently sorted ascending toggles to descending and back.
func sortLink(col Column, current string) string {
	if !col.Sortable {
		return ""
	}
	if current == SortStartAsc {
		return SortStartDesc
	}
	return SortStartAsc
}
