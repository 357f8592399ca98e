// Package thumbnail derives preview image URLs for portfolio projects.
//
// Resolution is best-effort and never fails: links that cannot be understood
// simply have no preview. Domains are matched by substring, so extra path or
// query content in a link is tolerated.
package thumbnail

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Zachkp/folio/internal/profile"
)

const (
	githubDomain = "github.com"
	githubPrefix = "https://github.com/"
	// GitHub renders an open-graph card for any repository path.
	githubOpenGraph = "https://opengraph.githubassets.com/1/"

	youtubeDomain = "youtube.com"
	youtubeShort  = "youtu.be"
	youtubeThumb  = "https://img.youtube.com/vi/%s/hqdefault.jpg"
)

// Resolve returns the preview image for p. The explicit image wins; otherwise
// one is derived from the link. ok is false when there is no preview.
func Resolve(p profile.Project) (string, bool) {
	if p.Image != "" {
		return p.Image, true
	}

	link := p.Link
	switch {
	case strings.Contains(link, githubDomain):
		return githubOpenGraph + strings.Replace(link, githubPrefix, "", 1), true
	case strings.Contains(link, youtubeDomain), strings.Contains(link, youtubeShort):
		id := youtubeID(link)
		if id == "" {
			return "", false
		}
		return fmt.Sprintf(youtubeThumb, url.PathEscape(id)), true
	}
	return "", false
}

// youtubeID extracts the video identifier from a watch URL (?v=) or a short link.
func youtubeID(link string) string {
	if strings.Contains(link, youtubeDomain) {
		u, err := url.Parse(link)
		if err != nil {
			return ""
		}
		return u.Query().Get("v")
	}

	id := link[strings.LastIndex(link, "/")+1:]
	if i := strings.IndexAny(id, "?#"); i >= 0 {
		id = id[:i]
	}
	return id
}
