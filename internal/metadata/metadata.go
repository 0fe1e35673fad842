// Package metadata normalizes raw search hits into item metadata. It is pure:
// no I/O, and a malformed sub-field degrades to that field's empty default
// instead of failing the item.
package metadata

import (
	"net/url"
	"strings"
	"time"

	"github.com/kitbuilder587/adversify/internal/domain"
	"github.com/kitbuilder587/adversify/internal/search"
)

// dateKeys is checked in order; the first value that parses wins.
var dateKeys = []string{
	"article:published_time",
	"dc.date.issued",
	"article:modified_time",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Normalize builds the metadata record for one raw hit.
func Normalize(hit search.RawHit) domain.ItemMetadata {
	tags := metaTags(hit)

	return domain.ItemMetadata{
		Title:                  hit.Title,
		Titles:                 titles(hit, tags),
		Snippet:                hit.Snippet,
		HTMLSnippet:            hit.HTMLSnippet,
		Snippets:               snippets(hit, tags),
		Link:                   hit.Link,
		Image:                  image(hit),
		Date:                   date(tags),
		ID:                     MakeID(hit.Link),
		TextExtractionPossible: textExtractionPossible(tags),
	}
}

// MakeID derives the stable item id from a link: scheme stripped, the rest
// percent-encoded with slashes kept literal. Doubles as the content-store key.
func MakeID(link string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(link, "http://"), "https://")

	segments := strings.Split(s, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// metaTags returns the embedded metadata block of a hit: the first metatags
// entry when present, otherwise nil.
func metaTags(hit search.RawHit) map[string]string {
	if len(hit.PageMap.MetaTags) > 0 {
		return hit.PageMap.MetaTags[0]
	}
	return nil
}

func titles(hit search.RawHit, tags map[string]string) []string {
	out := []string{hit.Title}
	for _, key := range []string{"og:title", "twitter:title", "title"} {
		if v, ok := tags[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

func snippets(hit search.RawHit, tags map[string]string) []string {
	out := []string{hit.Snippet}
	for _, key := range []string{"og:description", "twitter:description"} {
		if v, ok := tags[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// textExtractionPossible reports whether fetching the source is worth trying.
// No metadata at all means yes; that optimistic default matters because most
// hits carry no metatags.
func textExtractionPossible(tags map[string]string) bool {
	if tags == nil {
		return true
	}
	if tags["lp:paywall"] == "hard" {
		return false
	}
	if tags["cxenseparse:nvl-smp-access"] == "subscriber" {
		return false
	}
	if strings.Contains(strings.ToLower(tags["og:type"]), "video") {
		return false
	}
	return true
}

func image(hit search.RawHit) string {
	if src := imageSrc(hit.PageMap.CSEThumbnail); src != "" {
		return src
	}
	return imageSrc(hit.PageMap.CSEImage)
}

func imageSrc(refs []search.ImageRef) string {
	if len(refs) == 0 {
		return ""
	}
	src := refs[0].Src
	if strings.HasPrefix(strings.ToLower(src), "http") {
		return src
	}
	return ""
}

func date(tags map[string]string) string {
	for _, key := range dateKeys {
		raw, ok := tags[key]
		if !ok {
			continue
		}
		if t, ok := parseDate(raw); ok {
			return t.Format(time.RFC3339)
		}
	}
	return ""
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
