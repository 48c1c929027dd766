// Package youtube extracts YouTube video IDs from the URL shapes the
// admin panel accepts for gallery videos.
//
// Accepted shapes:
//
//	https://www.youtube.com/watch?v=<id>
//	https://youtube.com/watch?v=<id>&t=30s
//	https://youtu.be/<id>
//	https://www.youtube.com/embed/<id>
//	https://www.youtube.com/shorts/<id>
//	https://www.youtube.com/v/<id>
//
// A video ID is exactly 11 characters of [A-Za-z0-9_-].
package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractID returns the YouTube video ID embedded in rawURL, or
// false when the URL does not match any accepted shape.
func ExtractID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		if idPattern.MatchString(id) {
			return id, true
		}
		return "", false
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		// fall through to path handling below
	default:
		return "", false
	}

	if u.Path == "/watch" {
		id := u.Query().Get("v")
		if idPattern.MatchString(id) {
			return id, true
		}
		return "", false
	}

	for _, prefix := range []string{"/embed/", "/shorts/", "/v/"} {
		if strings.HasPrefix(u.Path, prefix) {
			id := strings.Trim(strings.TrimPrefix(u.Path, prefix), "/")
			if idPattern.MatchString(id) {
				return id, true
			}
			return "", false
		}
	}

	return "", false
}

// ThumbnailURL returns the maxresdefault thumbnail URL for rawURL,
// or false when no video ID can be extracted.
func ThumbnailURL(rawURL string) (string, bool) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id), true
}
