package collector

import (
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// assetExtensions lists path suffixes that are never worth grading on
// their own; crawling them would only burn the page budget.
var assetExtensions = map[string]struct{}{
	".css":         {},
	".js":          {},
	".json":        {},
	".map":         {},
	".txt":         {},
	".png":         {},
	".jpg":         {},
	".jpeg":        {},
	".gif":         {},
	".svg":         {},
	".ico":         {},
	".webp":        {},
	".webmanifest": {},
	".mp4":         {},
	".mp3":         {},
	".woff":        {},
	".woff2":       {},
	".ttf":         {},
	".eot":         {},
	".pdf":         {},
	".zip":         {},
	".tar":         {},
}

// extractLinks walks the markup once and returns absolute http(s) URLs
// for every anchor href, resolved against the page URL with fragments
// stripped. Malformed hrefs are ignored.
func extractLinks(base *url.URL, body string) []string {
	z := html.NewTokenizer(strings.NewReader(body))
	var links []string

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return links
			}
			return links
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		if string(name) != "a" || !hasAttr {
			continue
		}

		href := extractAttr(z, "href")
		if href == "" {
			continue
		}
		if resolved, ok := resolveLink(base, href); ok {
			links = append(links, resolved)
		}
	}
}

func extractAttr(z *html.Tokenizer, name string) string {
	for {
		key, val, more := z.TagAttr()
		if strings.EqualFold(string(key), name) {
			return strings.TrimSpace(string(val))
		}
		if !more {
			return ""
		}
	}
}

func resolveLink(base *url.URL, href string) (string, bool) {
	if strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "javascript:") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	resolved.Fragment = ""
	return resolved.String(), true
}

// canonicalURL keys the seen-set: scheme, host, and path with any
// trailing slash and fragment dropped.
func canonicalURL(u *url.URL) string {
	clone := *u
	clone.Fragment = ""
	clone.Path = strings.TrimSuffix(clone.Path, "/")
	return strings.ToLower(clone.Scheme) + "://" + strings.ToLower(clone.Host) + clone.Path + queryPart(&clone)
}

func queryPart(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	return "?" + u.RawQuery
}

func looksLikeAsset(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := assetExtensions[ext]
	return ok
}
