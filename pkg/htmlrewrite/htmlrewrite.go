// Package htmlrewrite turns relative resource references inside markup into
// absolute ones. The qualification logic is a pure predicate kept separate
// from the document traversal so it can be exercised without a parser.
package htmlrewrite

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/quillcms/wayfind/pkg/urlutils"
)

// Options controls which attribute values qualify for rewriting.
type Options struct {
	// AssetsOnly restricts rewriting to values under the static image
	// prefix.
	AssetsOnly bool

	// StaticImagePrefix overrides the asset prefix used by AssetsOnly.
	// Defaults to urlutils.DefaultStaticImagePrefix.
	StaticImagePrefix string
}

// rewrittenAttributes are the attribute names carrying resource references.
var rewrittenAttributes = []string{"href", "src"}

// AbsolutizeURLs rewrites relative href and src attribute values in an HTML
// content fragment to absolute URLs. Values rooted with a slash resolve
// against siteURL, others against itemURL. Values that are already
// absolute, protocol-relative, or anchor-only are left alone, as is every
// non-matching attribute and element.
//
// It returns the rewritten fragment and the number of attributes changed.
func AbsolutizeURLs(html, siteURL, itemURL string, opts Options) (string, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", 0, err
	}

	prefix := opts.StaticImagePrefix
	if prefix == "" {
		prefix = urlutils.DefaultStaticImagePrefix
	}

	rewritten := 0
	for _, name := range rewrittenAttributes {
		doc.Find("[" + name + "]").Each(func(_ int, sel *goquery.Selection) {
			value, _ := sel.Attr(name)
			if !shouldAbsolutize(value, opts.AssetsOnly, prefix) {
				return
			}

			// A slash-rooted value is relative to the site (including its
			// sub-directory), anything else to the current item.
			base := itemURL
			if strings.HasPrefix(value, "/") {
				base = siteURL
			}

			sel.SetAttr(name, urlutils.JoinURL(siteURL, base, value))
			rewritten++
		})
	}

	// The parser wraps fragments in a full document; metadata elements that
	// led the fragment end up in head, the rest in body.
	head, err := doc.Find("head").Html()
	if err != nil {
		return "", 0, err
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return "", 0, err
	}
	return head + body, rewritten, nil
}

// shouldAbsolutize decides whether an attribute value qualifies for
// rewriting.
func shouldAbsolutize(value string, assetsOnly bool, staticImagePrefix string) bool {
	if value == "" || strings.HasPrefix(value, "#") {
		return false
	}

	// Protocol-relative URLs are valid for both schemes and stay as-is.
	if strings.HasPrefix(value, "//") {
		return false
	}

	parsed, err := url.Parse(value)
	if err != nil {
		// A value we cannot parse is left untouched rather than mangled.
		return false
	}
	if parsed.Scheme != "" {
		return false
	}

	if assetsOnly && !strings.Contains(value, staticImagePrefix) {
		return false
	}

	return true
}
