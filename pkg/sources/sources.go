// Package sources builds search links for playing a song through an external
// service. Playback itself happens in the user's browser.
package sources

import (
	"fmt"
	"net/url"
)

// YoutubeSearchURL returns a YouTube search link for the song title.
func YoutubeSearchURL(title string) string {
	return fmt.Sprintf("https://www.youtube.com/results?search_query=%s", url.QueryEscape(title+" song"))
}

// GoogleSearchURL returns a Google search link for the song title.
func GoogleSearchURL(title string) string {
	return fmt.Sprintf("https://www.google.com/search?q=%s", url.QueryEscape(title+" song"))
}
