package evaluator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IliaW/partner-evaluator/internal/model"
	jsoniter "github.com/json-iterator/go"
)

var requiredFields = []string{
	"probability", "reachScore", "relevanceScore", "reasoning",
	"category", "businessProfile", "technicalAssessment",
	"marketPosition", "clientRelationships", "businessModel",
	"complianceGrowth", "partnershipEvaluation", "indicators",
	"salesPitch",
}

var codeFenceRe = regexp.MustCompile("```json\\s*|\\s*```")

// Models sometimes quote numbers or return 85.0 for integer scores.
// The leniency is registered on this config only.
var lenientJSON = func() jsoniter.API {
	api := jsoniter.Config{EscapeHTML: true, SortMapKeys: true, ValidateJsonRawMessage: true}.Froze()
	api.RegisterExtension(&lenientIntExtension{})
	return api
}()

// ParseEvaluation extracts the JSON object from a model response and validates it.
func ParseEvaluation(response string) (*model.Evaluation, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrEvaluation)
	}
	raw := codeFenceRe.ReplaceAllString(response[start:end+1], "")

	var fields map[string]jsoniter.RawMessage
	if err := lenientJSON.UnmarshalFromString(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response as JSON: %s", ErrEvaluation, err.Error())
	}
	var missing []string
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrEvaluation, strings.Join(missing, ", "))
	}

	var evaluation model.Evaluation
	if err := lenientJSON.UnmarshalFromString(raw, &evaluation); err != nil {
		return nil, fmt.Errorf("%w: unexpected response structure: %s", ErrEvaluation, err.Error())
	}
	if err := validateScores(&evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func validateScores(e *model.Evaluation) error {
	percentages := map[string]int{
		"probability":    e.Probability,
		"reachScore":     e.ReachScore,
		"relevanceScore": e.RelevanceScore,
	}
	for name, v := range percentages {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %s out of range 0-100: %d", ErrEvaluation, name, v)
		}
	}
	ordinals := map[string]int{
		"technicalAssessment.integrationScore":  e.TechnicalAssessment.IntegrationScore,
		"complianceGrowth.digitalPresenceScore": e.ComplianceGrowth.DigitalPresenceScore,
	}
	for name, v := range ordinals {
		if v < 1 || v > 5 {
			return fmt.Errorf("%w: %s out of range 1-5: %d", ErrEvaluation, name, v)
		}
	}
	if e.ClientRelationships.SuccessStories < 0 {
		return fmt.Errorf("%w: clientRelationships.successStories is negative", ErrEvaluation)
	}
	return nil
}
