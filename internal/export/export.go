// Package export converts the rendered landing page to Markdown, for copy
// review outside the browser.
package export

import (
	"fmt"
	"io"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Options tune the conversion.
type Options struct {
	// Domain makes relative links absolute when set.
	Domain string
	// Sections limits the output to these section ids, in page order.
	Sections []string
}

// Markdown converts every section container of a rendered page, a "main > div"
// or "body > div" with an id, into one Markdown document. Navigation, scripts,
// forms and decorative icons are dropped.
func Markdown(html io.Reader, opts Options) (string, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}
	doc.Find(`script, header, form, [aria-hidden="true"]`).Remove()

	conv := md.NewConverter(opts.Domain, true, nil)
	var parts []string
	doc.Find("main > div[id], body > div[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if len(opts.Sections) > 0 && !contains(opts.Sections, id) {
			return
		}
		if text := strings.TrimSpace(conv.Convert(s)); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n---\n\n") + "\n", nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
