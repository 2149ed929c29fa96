package evaluator

import "fmt"

const systemPrompt = `You are an expert at evaluating business partnership opportunities, specifically for SaaS and digital solutions.
Focus on finding partners who can reach many website owners or influence digital accessibility decisions.
Consider both explicit statements and implicit indicators in the content.
Be precise in categorizing and scoring potential partners.
Ensure all numeric scores are integers.
Format the response as a valid JSON object.`

const userPrompt = `Analyze this website to determine if it represents a potential partner or affiliate for web accessibility solutions.
Provide a comprehensive analysis covering all aspects below.

Content to analyze:
%s

Cover these categories:
1. CORE EVALUATION: partnership potential, reach and relevance (0-100 percent each).
2. BUSINESS PROFILE: industry, company size, geographic reach, years in business, client portfolio size.
3. TECHNICAL ASSESSMENT: technology stack, current accessibility solutions, integration capabilities (1-5), development services, hosting or platform services.
4. MARKET POSITION: segments served, competitor relationships, certifications, memberships, awards.
5. CLIENT RELATIONSHIPS: client types, average client size, retention indicators, service model, number of success stories.
6. BUSINESS MODEL: revenue streams, pricing model, sales approach, service delivery, contract types.
7. COMPLIANCE AND GROWTH: regulatory focus, compliance services, growth indicators, digital presence (1-5), future plans.
8. PARTNERSHIP EVALUATION: strengths, challenges, opportunities, risks, recommended approach.

Respond with a JSON object of exactly this structure:
{
    "probability": 85,
    "reachScore": 75,
    "relevanceScore": 90,
    "reasoning": "Comprehensive explanation of the evaluation",
    "category": "Primary partner category",
    "businessProfile": {
        "industry": "Company's industry",
        "companySize": "Size description",
        "geographicReach": "Geographic coverage",
        "yearsInBusiness": "Years active",
        "clientPortfolioSize": "Portfolio size"
    },
    "technicalAssessment": {
        "techStack": ["Technology 1", "Technology 2"],
        "accessibilitySolutions": "Current solutions description",
        "integrationScore": 4,
        "developmentServices": ["Service 1", "Service 2"],
        "hostingServices": "Hosting capabilities"
    },
    "marketPosition": {
        "segments": ["Segment 1", "Segment 2"],
        "competitors": ["Competitor relationship 1"],
        "certifications": ["Certification 1"],
        "memberships": ["Membership 1"],
        "awards": ["Award 1"]
    },
    "clientRelationships": {
        "clientTypes": ["Type 1", "Type 2"],
        "averageClientSize": "Average size description",
        "retentionRate": "Retention information",
        "serviceModel": "Service model description",
        "successStories": 5
    },
    "businessModel": {
        "revenueStreams": ["Stream 1", "Stream 2"],
        "pricingModel": "Pricing structure",
        "salesApproach": "Sales methodology",
        "serviceDelivery": "Delivery method",
        "contractTypes": ["Contract type 1"]
    },
    "complianceGrowth": {
        "regulatoryFocus": ["Focus 1"],
        "complianceServices": ["Service 1"],
        "growthIndicators": ["Indicator 1"],
        "digitalPresenceScore": 4,
        "futurePlans": ["Plan 1"]
    },
    "partnershipEvaluation": {
        "strengths": ["Strength 1"],
        "challenges": ["Challenge 1"],
        "opportunities": ["Opportunity 1"],
        "risks": ["Risk 1"],
        "recommendedApproach": "Detailed partnership approach"
    },
    "indicators": ["Key indicator 1", "Key indicator 2"],
    "salesPitch": "Customized sales pitch"
}

Ensure all numeric scores are integers and arrays contain actual findings, not placeholder text.`

func buildPrompt(document string) string {
	return fmt.Sprintf(userPrompt, document)
}
