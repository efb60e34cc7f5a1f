package jobparse

// DocType is the closed set of document categories a notification can
// classify into. The string values are part of the wire contract shared
// with the LLM-backed extractor.
type DocType string

const (
	TypeJob       DocType = "job"
	TypeAdmitCard DocType = "admit-card"
	TypeResult    DocType = "result"
	TypeAnswerKey DocType = "answer-key"
	TypeAdmission DocType = "admission"
)

// DocTypes lists every valid DocType, used for schema validation.
var DocTypes = []DocType{TypeJob, TypeAdmitCard, TypeResult, TypeAnswerKey, TypeAdmission}

// VacancyEntry is one post-wise row of the vacancy table. TotalPost holds
// digits only; Eligibility may be empty when the source gives none.
type VacancyEntry struct {
	PostName    string `json:"postName"`
	TotalPost   string `json:"totalPost"`
	Eligibility string `json:"eligibility"`
}

// FeeEntry is the application fee for one applicant category. Fee is
// either the literal "Nil" or a formatted amount like "₹100/-".
type FeeEntry struct {
	Category string `json:"category"`
	Fee      string `json:"fee"`
}

// DateEntry stores the matched date substring verbatim; no normalization
// or validation is ever applied to Date.
type DateEntry struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// AgeEntry is the age window for one applicant category.
type AgeEntry struct {
	Category string `json:"category"`
	MinAge   string `json:"minAge"`
	MaxAge   string `json:"maxAge"`
}

// PhysicalEntry is one row of the physical standards table. Male or
// Female is "NA" when the source states no figure for that sex.
type PhysicalEntry struct {
	Criteria string `json:"criteria"`
	Male     string `json:"male"`
	Female   string `json:"female"`
}

// ParsedJob is the structured record produced from one notification
// document. Slice fields are always non-nil, possibly empty; optional
// string fields are either a non-empty trimmed string or omitted.
type ParsedJob struct {
	Title               string          `json:"title"`
	Department          string          `json:"department"`
	Type                DocType         `json:"type"`
	ShortInfo           string          `json:"shortInfo"`
	Qualification       string          `json:"qualification,omitempty"`
	State               string          `json:"state,omitempty"`
	VacancyDetails      []VacancyEntry  `json:"vacancyDetails"`
	ApplicationFee      []FeeEntry      `json:"applicationFee"`
	ImportantDates      []DateEntry     `json:"importantDates"`
	AgeLimit            []AgeEntry      `json:"ageLimit"`
	EligibilityDetails  string          `json:"eligibilityDetails,omitempty"`
	SelectionProcess    []string        `json:"selectionProcess"`
	PhysicalEligibility []PhysicalEntry `json:"physicalEligibility"`
	ApplyOnlineURL      string          `json:"applyOnlineUrl,omitempty"`
	AdmitCardURL        string          `json:"admitCardUrl,omitempty"`
	ResultURL           string          `json:"resultUrl,omitempty"`
	AnswerKeyURL        string          `json:"answerKeyUrl,omitempty"`
	NotificationURL     string          `json:"notificationUrl,omitempty"`
	OfficialWebsiteURL  string          `json:"officialWebsiteUrl,omitempty"`
}

// Process-wide literal defaults used when no pattern yields a value.
const (
	defaultTitle      = "Government Job Notification"
	defaultDepartment = "Government of India"
	defaultPostName   = "Various Posts"
)
