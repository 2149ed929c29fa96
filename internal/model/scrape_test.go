package model

import "testing"

func TestFetchMechanismString(t *testing.T) {
	tests := map[FetchMechanism]string{
		Curl:               "curl",
		HeadlessBrowser:    "headless browser",
		CommonCrawl:        "common crawl",
		FetchMechanism(-1): "unknown",
		FetchMechanism(42): "unknown",
	}
	for fm, want := range tests {
		if got := fm.String(); got != want {
			t.Fatalf("FetchMechanism(%d).String(): expected %q, got %q", int(fm), want, got)
		}
	}
}
