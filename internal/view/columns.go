package view

import (
	"strconv"
	"time"

	"github.com/amaumene/gotvmovies/internal/models"
)

// Column IDs, in display order.
const (
	ColumnTitle   = "title"
	ColumnIcon    = "icon"
	ColumnChannel = "channel"
	ColumnRotten  = "rotten"
	ColumnIMDB    = "imdb"
	ColumnStart   = "start"
	ColumnStop    = "stop"
)

// RecentFilterValue switches on the start column filter. The predicate
// compares rows against the build clock and ignores the value itself; a
// non-empty value is only what marks the filter active.
const RecentFilterValue = "recent"

// recentWindow is how far in the past a broadcast may have started and
// still be shown.
const recentWindow = time.Hour

// Column pairs a raw value accessor with the optional rendering and
// filtering behavior of one table column.
type Column struct {
	ID       string
	Label    string
	Sortable bool
	// Accessor returns the raw, unformatted value backing the column.
	Accessor func(m models.Movie) string
	// Render produces the cell for this column. Nil means a plain text
	// cell holding the accessor value.
	Render func(m models.Movie, rc RenderContext) Cell
	// Filter decides row visibility when a value is set for this
	// column. Nil means the column cannot filter.
	Filter func(m models.Movie, value string, now time.Time) bool
}

// Columns returns the fixed, ordered column set. Every column is always
// visible; the order matches the rendered table left to right.
func Columns() []Column {
	return []Column{
		{
			ID:    ColumnTitle,
			Label: "Title",
			Accessor: func(m models.Movie) string {
				return m.Title
			},
			Render: func(m models.Movie, _ RenderContext) Cell {
				return Cell{
					Text: m.Title,
					Bold: true,
					Href: SearchURL(m.Title, m.Directors),
				}
			},
		},
		{
			ID:    ColumnIcon,
			Label: "Image",
			Accessor: func(m models.Movie) string {
				return m.IconURL
			},
			Render: func(m models.Movie, _ RenderContext) Cell {
				return Cell{
					ImageURL: m.IconURL,
					Text:     m.Title,
				}
			},
		},
		{
			ID:    ColumnChannel,
			Label: "Channel",
			Accessor: func(m models.Movie) string {
				return m.ChannelID
			},
		},
		{
			ID:    ColumnRotten,
			Label: "Rotten Tomatoes",
			Accessor: func(m models.Movie) string {
				if m.RatingsInfo == nil || m.RatingsInfo.RottenRating == nil {
					return ""
				}
				return strconv.Itoa(*m.RatingsInfo.RottenRating)
			},
			Render: func(m models.Movie, _ RenderContext) Cell {
				return Cell{Text: FormatRottenRating(m.RatingsInfo)}
			},
		},
		{
			ID:    ColumnIMDB,
			Label: "IMDb",
			Accessor: func(m models.Movie) string {
				if m.RatingsInfo == nil || m.RatingsInfo.ImdbRating == nil {
					return ""
				}
				return strconv.FormatFloat(*m.RatingsInfo.ImdbRating, 'f', -1, 64)
			},
			Render: func(m models.Movie, _ RenderContext) Cell {
				return Cell{Text: FormatIMDBRating(m.RatingsInfo)}
			},
		},
		{
			ID:       ColumnStart,
			Label:    "Start time",
			Sortable: true,
			Accessor: func(m models.Movie) string {
				return m.StartDateTime
			},
			Render: func(m models.Movie, rc RenderContext) Cell {
				return Cell{
					Text:    FormatDateTime(m.StartDateTime, rc.Locale),
					Tooltip: TimeRangeTooltip(m.StartDateTime, m.StopDateTime, rc.Locale),
				}
			},
			Filter: StartedWithinLastHour,
		},
		{
			ID:    ColumnStop,
			Label: "Stop time",
			Accessor: func(m models.Movie) string {
				return m.StopDateTime
			},
			Render: func(m models.Movie, rc RenderContext) Cell {
				return Cell{Text: FormatDateTime(m.StopDateTime, rc.Locale)}
			},
		},
	}
}

// StartedWithinLastHour keeps broadcasts whose start is no more than
// one hour before now; a start exactly one hour ago stays visible.
// Broadcasts that have not started yet always pass. Unparseable start
// times are dropped.
func StartedWithinLastHour(m models.Movie, _ string, now time.Time) bool {
	start, ok := ParseFeedTime(m.StartDateTime)
	if !ok {
		return false
	}
	return !start.Before(now.Add(-recentWindow))
}
