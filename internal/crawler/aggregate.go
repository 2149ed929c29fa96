package crawler

import (
	"strings"

	"github.com/IliaW/partner-evaluator/internal/model"
)

const pageSeparator = "\n\n---\n\n"

// Aggregate joins collected pages into a single document, each page under a "# {url}" heading.
// It returns false if there is nothing to join.
func Aggregate(pages []model.PageContent) (string, bool) {
	if len(pages) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, "# "+p.URL+"\n\n"+p.Text)
	}
	return strings.Join(parts, pageSeparator), true
}

// Truncate keeps the first maxChars characters of doc. maxChars <= 0 disables truncation.
func Truncate(doc string, maxChars int) string {
	if maxChars <= 0 {
		return doc
	}
	n := 0
	for i := range doc {
		if n == maxChars {
			return doc[:i]
		}
		n++
	}
	return doc
}
