package view

import (
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/amaumene/gotvmovies/internal/constants"
	"github.com/amaumene/gotvmovies/internal/models"
)

// NoValuePlaceholder is rendered for cells with nothing to show.
const NoValuePlaceholder = "-"

// feedLocalLayout parses timestamps the feed delivers without a zone
// offset. They are taken as local time.
const feedLocalLayout = "2006-01-02T15:04:05"

var (
	displayTags = func() []language.Tag {
		tags := make([]language.Tag, 0, len(constants.DisplayLocales))
		for _, locale := range constants.DisplayLocales {
			tags = append(tags, language.MustParse(locale))
		}
		return tags
	}()

	localeMatcher = language.NewMatcher(displayTags)
)

// dateTimeLayouts maps display locale bases to their full date-time
// format.
var dateTimeLayouts = map[string]string{
	"en": "Jan 2, 2006, 3:04 PM",
	"de": "02.01.2006, 15:04",
	"fr": "02/01/2006 15:04",
	"nl": "02-01-2006, 15:04",
}

// timeLayouts maps display locale bases to their time-of-day format.
var timeLayouts = map[string]string{
	"en": "3:04 PM",
	"de": "15:04",
	"fr": "15:04",
	"nl": "15:04",
}

// ParseFeedTime parses an ISO 8601 timestamp from the feed. Offset and
// offset-less forms are both accepted.
func ParseFeedTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(feedLocalLayout, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MatchLocale negotiates the display locale from the given preferences,
// checked in order. Each entry may be a plain tag or an Accept-Language
// list; unknown or empty inputs fall through to the first configured
// locale.
func MatchLocale(preferred ...string) language.Tag {
	_, idx := language.MatchStrings(localeMatcher, preferred...)
	return displayTags[idx]
}

// FormatRottenRating renders a Rotten Tomatoes score as "93%". Absent
// ratings render the placeholder, and a score of exactly 0 collapses to
// the placeholder as well.
func FormatRottenRating(r *models.RatingsInfo) string {
	if r == nil || r.RottenRating == nil || *r.RottenRating == 0 {
		return NoValuePlaceholder
	}
	return strconv.Itoa(*r.RottenRating) + "%"
}

// FormatIMDBRating renders an IMDb score as "8.8/10". Absent ratings
// render the placeholder, and a score of exactly 0 collapses to the
// placeholder as well.
func FormatIMDBRating(r *models.RatingsInfo) string {
	if r == nil || r.ImdbRating == nil || *r.ImdbRating == 0 {
		return NoValuePlaceholder
	}
	return strconv.FormatFloat(*r.ImdbRating, 'f', -1, 64) + "/10"
}

// SearchURL builds the outbound web search link for a movie. The first
// director, when present, is appended to the title to sharpen the
// query.
func SearchURL(title string, directors []string) string {
	query := title
	if len(directors) > 0 && directors[0] != "" {
		query += " " + directors[0]
	}
	return constants.SearchBaseURL + "?q=" + url.QueryEscape(query)
}

// FormatDateTime renders a feed timestamp in the locale's date-time
// format. Values that do not parse are shown verbatim.
func FormatDateTime(s string, locale language.Tag) string {
	t, ok := ParseFeedTime(s)
	if !ok {
		return s
	}
	return t.Format(layoutFor(locale, dateTimeLayouts))
}

// FormatTimeOfDay renders only the clock time of a feed timestamp.
// Values that do not parse are shown verbatim.
func FormatTimeOfDay(s string, locale language.Tag) string {
	t, ok := ParseFeedTime(s)
	if !ok {
		return s
	}
	return t.Format(layoutFor(locale, timeLayouts))
}

// TimeRangeTooltip renders the "20:15 - 22:45" running-time hint shown
// on start cells.
func TimeRangeTooltip(start, stop string, locale language.Tag) string {
	return FormatTimeOfDay(start, locale) + " - " + FormatTimeOfDay(stop, locale)
}

func layoutFor(locale language.Tag, layouts map[string]string) string {
	if base, conf := locale.Base(); conf != language.No {
		if layout, ok := layouts[base.String()]; ok {
			return layout
		}
	}
	return layouts[constants.DisplayLocales[0]]
}
