package gnmath

// Zone is a single record in the zones.json feed
type Zone struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Cover      string   `json:"cover"` // Contains the {COVER_URL} placeholder
	URL        string   `json:"url"`   // Contains the {HTML_URL} placeholder
	Author     string   `json:"author,omitempty"`
	AuthorLink string   `json:"authorLink,omitempty"`
	Featured   bool     `json:"featured,omitempty"`
	Special    []string `json:"special,omitempty"`
}

// Feed placeholders and sentinel
const (
	htmlPlaceholder  = "{HTML_URL}"
	coverPlaceholder = "{COVER_URL}"

	// SentinelID marks the "suggest a game" entry that is not playable
	SentinelID = -1
)
