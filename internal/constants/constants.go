// Package constants defines application-wide constants and default values.
package constants

const (
	// Application metadata
	AppName        = "GoTVMovies"
	AppVersion     = "1.0.0"
	AppDescription = "Renders a remote TV movie broadcast feed as a sortable, filtered table"

	// PageTitle is the fixed heading shown above the table.
	PageTitle = "TV Movies"

	// Default configuration values
	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	// DefaultFeedURL is the movie feed endpoint queried when FEED_URL is not set.
	DefaultFeedURL = "https://tvmovies-feed.example.com/movies.json"

	// SearchBaseURL is the search engine the title column links to.
	SearchBaseURL = "https://www.google.com/search"

	// Cache settings
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 // minutes

	// Rate limiting for feed fetches
	FeedRateLimit = 2 // requests per second
	FeedRateBurst = 1 // burst capacity
)

// DisplayLocales lists the locales the table can format dates for, in
// matcher preference order. The first entry is the fallback.
var DisplayLocales = []string{
	"en",
	"de",
	"fr",
	"nl",
}
