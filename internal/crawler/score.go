package crawler

import "strings"

const (
	HighScore    = 1.0
	MediumScore  = 0.6
	LowScore     = 0.3
	DefaultScore = 0.1
)

type scoreTier struct {
	score    float64
	keywords []string
}

// Tiers are checked in order, the first match wins.
var scoreTiers = []scoreTier{
	{
		score: HighScore,
		keywords: []string{
			"about", "company", "team", "partner", "client",
			"service", "product", "solution", "integration",
			"enterprise", "business", "pricing", "plan",
			"technology", "platform", "developer", "api",
			"security", "compliance", "legal", "privacy",
			"contact", "support",
		},
	},
	{
		score: MediumScore,
		keywords: []string{
			"feature", "resource", "blog", "news",
			"case-study", "success-story", "testimonial",
			"documentation", "guide", "help",
		},
	},
	{
		score: LowScore,
		keywords: []string{
			"career", "job", "press", "media",
			"event", "webinar", "download",
		},
	},
}

// ScoreURL rates how likely a page is to describe a potential business partner.
func ScoreURL(url string) float64 {
	lower := strings.ToLower(url)
	for _, tier := range scoreTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(lower, keyword) {
				return tier.score
			}
		}
	}
	return DefaultScore
}
