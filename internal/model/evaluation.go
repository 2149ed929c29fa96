package model

import "time"

// Evaluation is the structured partner assessment returned by the language model.
type Evaluation struct {
	Probability           int                   `json:"probability"`
	ReachScore            int                   `json:"reachScore"`
	RelevanceScore        int                   `json:"relevanceScore"`
	Reasoning             string                `json:"reasoning"`
	Category              string                `json:"category"`
	BusinessProfile       BusinessProfile       `json:"businessProfile"`
	TechnicalAssessment   TechnicalAssessment   `json:"technicalAssessment"`
	MarketPosition        MarketPosition        `json:"marketPosition"`
	ClientRelationships   ClientRelationships   `json:"clientRelationships"`
	BusinessModel         BusinessModel         `json:"businessModel"`
	ComplianceGrowth      ComplianceGrowth      `json:"complianceGrowth"`
	PartnershipEvaluation PartnershipEvaluation `json:"partnershipEvaluation"`
	Indicators            []string              `json:"indicators"`
	SalesPitch            string                `json:"salesPitch"`
}

type BusinessProfile struct {
	Industry            string `json:"industry"`
	CompanySize         string `json:"companySize"`
	GeographicReach     string `json:"geographicReach"`
	YearsInBusiness     string `json:"yearsInBusiness"`
	ClientPortfolioSize string `json:"clientPortfolioSize"`
}

type TechnicalAssessment struct {
	TechStack              []string `json:"techStack"`
	AccessibilitySolutions string   `json:"accessibilitySolutions"`
	IntegrationScore       int      `json:"integrationScore"` // 1-5
	DevelopmentServices    []string `json:"developmentServices"`
	HostingServices        string   `json:"hostingServices"`
}

type MarketPosition struct {
	Segments       []string `json:"segments"`
	Competitors    []string `json:"competitors"`
	Certifications []string `json:"certifications"`
	Memberships    []string `json:"memberships"`
	Awards         []string `json:"awards"`
}

type ClientRelationships struct {
	ClientTypes       []string `json:"clientTypes"`
	AverageClientSize string   `json:"averageClientSize"`
	RetentionRate     string   `json:"retentionRate"`
	ServiceModel      string   `json:"serviceModel"`
	SuccessStories    int      `json:"successStories"`
}

type BusinessModel struct {
	RevenueStreams  []string `json:"revenueStreams"`
	PricingModel    string   `json:"pricingModel"`
	SalesApproach   string   `json:"salesApproach"`
	ServiceDelivery string   `json:"serviceDelivery"`
	ContractTypes   []string `json:"contractTypes"`
}

type ComplianceGrowth struct {
	RegulatoryFocus      []string `json:"regulatoryFocus"`
	ComplianceServices   []string `json:"complianceServices"`
	GrowthIndicators     []string `json:"growthIndicators"`
	DigitalPresenceScore int      `json:"digitalPresenceScore"` // 1-5
	FuturePlans          []string `json:"futurePlans"`
}

type PartnershipEvaluation struct {
	Strengths           []string `json:"strengths"`
	Challenges          []string `json:"challenges"`
	Opportunities       []string `json:"opportunities"`
	Risks               []string `json:"risks"`
	RecommendedApproach string   `json:"recommendedApproach"`
}

// Report wraps an evaluation with the crawl metadata that produced it.
type Report struct {
	ID               string      `json:"id"`
	URL              string      `json:"url"`
	Evaluation       *Evaluation `json:"evaluation"`
	PagesVisited     int         `json:"pages_visited"`
	PagesCollected   int         `json:"pages_collected"`
	ContentLength    int         `json:"content_length"`
	FetchMechanism   string      `json:"fetch_mechanism"`
	TimeToEvaluate   int64       `json:"time_to_evaluate"` // in milliseconds
	EvaluatorVersion string      `json:"evaluator_version"`
	CreatedAt        time.Time   `json:"created_at"`
	Cached           bool        `json:"-"`
}
