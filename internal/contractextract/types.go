package contractextract

import "time"

const Disclaimer = "This is an automated heuristic extraction, not a legal review. " +
	"Confidence scores reflect pattern coverage of the document text, not legal " +
	"correctness or enforceability. Consult qualified counsel before relying on any extracted term."

const (
	MaxParties   = 5
	MaxLineItems = 10

	// Party name candidates outside this open interval are discarded.
	MinPartyNameChars = 3
	MaxPartyNameChars = 200

	// Lower-cased name similarity above this collapses two parties into one.
	DuplicateNameSimilarity = 0.85

	// Classification scores below this yield TypeUnknown.
	MinClassifierScore = 2
)

type ContractType string

const (
	TypeNDA        ContractType = "nda"
	TypeEmployment ContractType = "employment"
	TypeService    ContractType = "service"
	TypeLease      ContractType = "lease"
	TypePurchase   ContractType = "purchase"
	TypeUnknown    ContractType = "unknown"
)

type PartyRole string

const (
	RoleDisclosingParty PartyRole = "disclosing_party"
	RoleReceivingParty  PartyRole = "receiving_party"
	RoleEmployer        PartyRole = "employer"
	RoleEmployee        PartyRole = "employee"
	RoleCustomer        PartyRole = "customer"
	RoleVendor          PartyRole = "vendor"
	RoleThirdParty      PartyRole = "third_party"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type PartyInfo struct {
	Name       string    `json:"name"`
	Role       PartyRole `json:"role"`
	Confidence float64   `json:"confidence_score"`
}

type AccountInfo struct {
	AccountNumber  string  `json:"account_number,omitempty"`
	BillingContact string  `json:"billing_contact,omitempty"`
	Confidence     float64 `json:"confidence_score"`
}

type LineItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Confidence  float64 `json:"confidence_score"`
}

type FinancialDetails struct {
	TotalContractValue *float64   `json:"total_contract_value,omitempty"`
	Currency           string     `json:"currency,omitempty"`
	LineItems          []LineItem `json:"line_items"`
	Confidence         float64    `json:"confidence_score"`
}

type PaymentTerms struct {
	Terms      string  `json:"payment_terms,omitempty"`
	Method     string  `json:"payment_method,omitempty"`
	Confidence float64 `json:"confidence_score"`
}

type RevenueClassification struct {
	PaymentType      string  `json:"payment_type"`
	BillingCycle     string  `json:"billing_cycle,omitempty"`
	AutoRenewal      bool    `json:"auto_renewal,omitempty"`
	ContractDuration string  `json:"contract_duration,omitempty"`
	Confidence       float64 `json:"confidence_score"`
}

type SLAInfo struct {
	PerformanceMetrics []string `json:"performance_metrics"`
	SupportTerms       string   `json:"support_terms,omitempty"`
	MaintenanceTerms   string   `json:"maintenance_terms,omitempty"`
	PenaltyClauses     []string `json:"penalty_clauses"`
	Remedies           []string `json:"remedies"`
	Confidence         float64  `json:"confidence_score"`
}

type GapAnalysis struct {
	MissingFields   []string `json:"missing_fields"`
	CriticalGaps    []string `json:"critical_gaps"`
	Recommendations []string `json:"recommendations"`
}

// ContractData is the engine's sole product: one immutable snapshot per run.
// Stages populate disjoint sections; the aggregator and gap analyzer read the
// finished snapshot only.
type ContractData struct {
	ContractType           ContractType          `json:"contract_type"`
	Parties                []PartyInfo           `json:"parties"`
	AccountInfo            AccountInfo           `json:"account_info"`
	FinancialDetails       FinancialDetails      `json:"financial_details"`
	PaymentTerms           PaymentTerms          `json:"payment_terms"`
	RevenueClassification  RevenueClassification `json:"revenue_classification"`
	SLAInfo                SLAInfo               `json:"sla_info"`
	GapAnalysis            GapAnalysis           `json:"gap_analysis"`
	OverallConfidenceScore float64               `json:"overall_confidence_score"`
}

type PipelineMetadata struct {
	StagesExecuted    []string  `json:"stages_executed"`
	RecognizerUsed    bool      `json:"recognizer_used"`
	RecognizerError   string    `json:"recognizer_error,omitempty"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
	TextLength        int       `json:"text_length"`
	ProgressDelivered []int     `json:"progress_delivered,omitempty"`
}

type ResponseEnvelope struct {
	DocRef           string           `json:"doc_ref"`
	ContractType     ContractType     `json:"contract_type"`
	Data             ContractData     `json:"contract_data"`
	ReportMarkdown   string           `json:"report_markdown"`
	PipelineMetadata PipelineMetadata `json:"pipeline_metadata"`
	Disclaimer       string           `json:"disclaimer"`
}
