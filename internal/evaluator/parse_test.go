package evaluator

import (
	"errors"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func validResponse() map[string]any {
	return map[string]any{
		"probability":    85,
		"reachScore":     70,
		"relevanceScore": 90,
		"reasoning":      "Web agency serving hundreds of small businesses.",
		"category":       "Web Agency",
		"businessProfile": map[string]any{
			"industry":            "Web development",
			"companySize":         "11-50",
			"geographicReach":     "National",
			"yearsInBusiness":     "12",
			"clientPortfolioSize": "300+",
		},
		"technicalAssessment": map[string]any{
			"techStack":              []string{"WordPress", "Shopify"},
			"accessibilitySolutions": "None mentioned",
			"integrationScore":       4,
			"developmentServices":    []string{"Custom themes"},
			"hostingServices":        "Managed hosting",
		},
		"marketPosition": map[string]any{
			"segments": []string{"SMB"},
		},
		"clientRelationships": map[string]any{
			"clientTypes":    []string{"Retail"},
			"successStories": 6,
		},
		"businessModel": map[string]any{
			"revenueStreams": []string{"Projects", "Retainers"},
			"pricingModel":   "Fixed price",
		},
		"complianceGrowth": map[string]any{
			"digitalPresenceScore": 3,
		},
		"partnershipEvaluation": map[string]any{
			"strengths":           []string{"Large client base"},
			"recommendedApproach": "Reseller program",
		},
		"indicators": []string{"Agency", "Hosting"},
		"salesPitch": "Offer accessibility as an add-on to every site you ship.",
	}
}

func encode(t *testing.T, v map[string]any) string {
	t.Helper()
	s, err := jsoniter.MarshalToString(v)
	if err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
	return s
}

func TestParseEvaluation(t *testing.T) {
	raw := encode(t, validResponse())

	tests := map[string]string{
		"plain":      raw,
		"fenced":     "```json\n" + raw + "\n```",
		"with prose": "Here is my analysis:\n```json\n" + raw + "\n```\nLet me know if you need more.",
	}
	for name, response := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := ParseEvaluation(response)
			if err != nil {
				t.Fatalf("ParseEvaluation returned error: %v", err)
			}
			if e.Probability != 85 || e.ReachScore != 70 || e.RelevanceScore != 90 {
				t.Fatalf("unexpected scores: %d %d %d", e.Probability, e.ReachScore, e.RelevanceScore)
			}
			if e.Category != "Web Agency" || e.BusinessProfile.CompanySize != "11-50" {
				t.Fatalf("unexpected profile: %+v", e.BusinessProfile)
			}
			if e.TechnicalAssessment.IntegrationScore != 4 || e.ComplianceGrowth.DigitalPresenceScore != 3 {
				t.Fatal("unexpected ordinal scores")
			}
			if e.ClientRelationships.SuccessStories != 6 || len(e.Indicators) != 2 {
				t.Fatal("unexpected client relationships or indicators")
			}
		})
	}
}

func TestParseEvaluationLenientNumbers(t *testing.T) {
	r := validResponse()
	r["probability"] = "85"
	r["reachScore"] = 70.0
	r["technicalAssessment"].(map[string]any)["integrationScore"] = "4"
	raw := strings.Replace(encode(t, r), `"relevanceScore":90`, `"relevanceScore":90.0`, 1)

	e, err := ParseEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseEvaluation returned error: %v", err)
	}
	if e.Probability != 85 || e.ReachScore != 70 || e.RelevanceScore != 90 || e.TechnicalAssessment.IntegrationScore != 4 {
		t.Fatalf("unexpected scores: %+v", e)
	}
}

func TestLenientNumbersStayLocal(t *testing.T) {
	if _, err := ParseEvaluation(encode(t, validResponse())); err != nil {
		t.Fatalf("ParseEvaluation returned error: %v", err)
	}
	var req struct {
		URL   string `json:"url"`
		Count int    `json:"count"`
	}
	if err := jsoniter.UnmarshalFromString(`{"url":123}`, &req); err == nil {
		t.Fatal("expected a number to be rejected for a string field")
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(`{"count":"5"}`, &req); err == nil {
		t.Fatal("expected a quoted number to be rejected for an int field")
	}
}

func TestParseEvaluationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		raw     string
		wantMsg string
	}{
		{name: "no json", raw: "I could not evaluate this website.", wantMsg: "no JSON object"},
		{name: "broken json", raw: `{"probability": 85,`, wantMsg: "no JSON object"},
		{name: "invalid json", raw: `{"probability": }`, wantMsg: "failed to parse"},
		{
			name:    "missing fields",
			mutate:  func(r map[string]any) { delete(r, "salesPitch"); delete(r, "category") },
			wantMsg: "missing required fields: category, salesPitch",
		},
		{
			name:    "probability above 100",
			mutate:  func(r map[string]any) { r["probability"] = 150 },
			wantMsg: "probability out of range",
		},
		{
			name:    "negative reach",
			mutate:  func(r map[string]any) { r["reachScore"] = -1 },
			wantMsg: "reachScore out of range",
		},
		{
			name: "integration score zero",
			mutate: func(r map[string]any) {
				r["technicalAssessment"].(map[string]any)["integrationScore"] = 0
			},
			wantMsg: "integrationScore out of range",
		},
		{
			name: "digital presence above 5",
			mutate: func(r map[string]any) {
				r["complianceGrowth"].(map[string]any)["digitalPresenceScore"] = 6
			},
			wantMsg: "digitalPresenceScore out of range",
		},
		{
			name: "negative success stories",
			mutate: func(r map[string]any) {
				r["clientRelationships"].(map[string]any)["successStories"] = -2
			},
			wantMsg: "successStories is negative",
		},
		{
			name:    "wrong type",
			mutate:  func(r map[string]any) { r["indicators"] = map[string]any{"a": 1} },
			wantMsg: "unexpected response structure",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			if tt.mutate != nil {
				r := validResponse()
				tt.mutate(r)
				raw = encode(t, r)
			}
			_, err := ParseEvaluation(raw)
			if !errors.Is(err, ErrEvaluation) {
				t.Fatalf("expected ErrEvaluation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
