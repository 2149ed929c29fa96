package crawler

import (
	"bytes"
	"strings"

	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/PuerkitoBio/goquery"
)

const contentSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, td"

// ParseHTML converts an HTML document into markdown-like text and collects the raw href of every
// anchor. Links are returned as found in the document, resolution happens in the scheduler.
func ParseHTML(pageURL string, body []byte) (*model.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.TrimSpace(href) != "" {
			links = append(links, href)
		}
	})

	doc.Find("script, style, noscript, svg, iframe, template").Remove()

	var sb strings.Builder
	if title := collapseSpaces(doc.Find("title").First().Text()); title != "" {
		sb.WriteString("# " + title + "\n\n")
	}
	root := doc.Find("body")
	blocks := 0
	// Nested matches (li > p) are skipped so text is written once.
	root.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(contentSelector).Length() > 0 {
			return
		}
		text := collapseSpaces(s.Text())
		if text == "" {
			return
		}
		blocks++
		switch tag := goquery.NodeName(s); tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString(strings.Repeat("#", int(tag[1]-'0')+1) + " " + text + "\n\n")
		case "li":
			sb.WriteString("- " + text + "\n")
		case "blockquote":
			sb.WriteString("> " + text + "\n\n")
		default:
			sb.WriteString(text + "\n\n")
		}
	})

	if blocks == 0 {
		// Pages built without semantic markup: fall back to the whole body text.
		sb.WriteString(collapseSpaces(root.Text()))
	}
	text := strings.TrimSpace(sb.String())

	return &model.Page{
		URL:   pageURL,
		Text:  text,
		Links: links,
	}, nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
