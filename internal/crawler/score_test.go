package crawler

import (
	"strings"
	"testing"
)

func TestScoreURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want float64
	}{
		{"about page", "https://example.com/about", HighScore},
		{"pricing upper case", "https://example.com/PRICING", HighScore},
		{"api docs", "https://example.com/api/v2", HighScore},
		{"contact mixed case", "https://Example.com/Contact-Us", HighScore},
		{"blog", "https://example.com/blog/post-1", MediumScore},
		{"case study", "https://example.com/case-study/acme", MediumScore},
		{"careers", "https://example.com/careers", LowScore},
		{"webinar", "https://example.com/webinar/2024", LowScore},
		{"no keyword", "https://example.com/", DefaultScore},
		{"random path", "https://example.com/x/y/z?q=1", DefaultScore},
		// "team" wins over "blog" because the high tier is checked first
		{"high and medium", "https://example.com/blog/meet-the-team", HighScore},
		{"medium and low", "https://example.com/news/press", MediumScore},
		{"high and low", "https://example.com/careers/product-manager", HighScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreURL(tt.url); got != tt.want {
				t.Fatalf("expected score %.1f for %s, got %.1f", tt.want, tt.url, got)
			}
		})
	}
}

func TestScoreURLEveryHighKeywordIsCaseInsensitive(t *testing.T) {
	for _, keyword := range scoreTiers[0].keywords {
		for _, u := range []string{"https://example.com/" + keyword, "HTTPS://EXAMPLE.COM/" + strings.ToUpper(keyword)} {
			if got := ScoreURL(u); got != HighScore {
				t.Fatalf("expected %.1f for %s, got %.1f", HighScore, u, got)
			}
		}
	}
}

