package model

type FetchMechanism int

const (
	Curl FetchMechanism = iota
	HeadlessBrowser
	CommonCrawl
)

func (fm FetchMechanism) String() string {
	if fm < Curl || fm > CommonCrawl {
		return "unknown"
	}
	return [...]string{"curl", "headless browser", "common crawl"}[fm]
}

// Page is the result of a single fetch: extracted text plus raw, unresolved outbound links.
type Page struct {
	URL   string
	Text  string
	Links []string
}

// PageContent is one collected fragment of a crawl.
type PageContent struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type EvaluationTask struct {
	URL   string `json:"url"`
	Force bool   `json:"force"`
}
