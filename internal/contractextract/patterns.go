package contractextract

import "regexp"

// currencyClass matches a single currency symbol. Detection of the contract
// currency is independent of amount extraction: the first symbol anywhere in
// the text wins.
const currencyClass = `[$€£¥₹₽₩₪₦₨₫₭₮₯₰₱₲₳₴₵₶₷₸₺₻₼₾₿]`

var currencySymbolRe = regexp.MustCompile(currencyClass)

// Classification signatures. Each regex occurrence counts double; presence of
// any bonus keyword adds a flat +3 for that type.
var classifierSignatures = map[ContractType][]*regexp.Regexp{
	TypeNDA: {
		regexp.MustCompile(`\b(?:non\s*-\s*disclosure|nda|confidentiality)\s+agreement\b`),
		regexp.MustCompile(`\b(?:confidential|proprietary)\s+information\b`),
		regexp.MustCompile(`\b(?:disclosing\s+party|receiving\s+party)\b`),
		regexp.MustCompile(`\b(?:trade\s+secrets|confidential\s+data)\b`),
		regexp.MustCompile(`\b(?:disclosure|non\s*-\s*disclosure)\s+obligations\b`),
		regexp.MustCompile(`\b(?:confidentiality\s+period|term\s+of\s+confidentiality)\b`),
		regexp.MustCompile(`\b(?:mutual\s+non\s*-\s*disclosure)\b`),
		regexp.MustCompile(`\b(?:confidentiality\s+and\s+non\s*-\s*disclosure)\b`),
	},
	TypeEmployment: {
		regexp.MustCompile(`\b(?:employment|employee|employer)\s+agreement\b`),
		regexp.MustCompile(`\b(?:offer\s+letter|employment\s+contract)\b`),
		regexp.MustCompile(`\b(?:salary|compensation|benefits)\s+package\b`),
		regexp.MustCompile(`\b(?:job\s+title|position|role)\b`),
		regexp.MustCompile(`\b(?:start\s+date|employment\s+date)\b`),
		regexp.MustCompile(`\b(?:at\s*-\s*will\s+employment)\b`),
		regexp.MustCompile(`\b(?:employment\s+terms\s+and\s+conditions)\b`),
		regexp.MustCompile(`\b(?:employee\s+handbook)\b`),
	},
	TypeService: {
		regexp.MustCompile(`\b(?:service|consulting|professional)\s+agreement\b`),
		regexp.MustCompile(`\b(?:statement\s+of\s+work|sow)\b`),
		regexp.MustCompile(`\b(?:service\s+level|sla)\b`),
		regexp.MustCompile(`\b(?:service\s+fees|hourly\s+rate)\b`),
		regexp.MustCompile(`\b(?:service\s+provider|vendor|supplier)\b`),
		regexp.MustCompile(`\b(?:master\s+services?\s+agreement|msa)\b`),
		regexp.MustCompile(`\b(?:professional\s+services?\s+agreement)\b`),
		regexp.MustCompile(`\b(?:consulting\s+services?\s+agreement)\b`),
	},
	TypeLease: {
		regexp.MustCompile(`\b(?:lease\s+agreement|rental\s+agreement)\b`),
		regexp.MustCompile(`\b(?:lessor|lessee)\b`),
		regexp.MustCompile(`\b(?:rental\s+payment|lease\s+payment)\b`),
		regexp.MustCompile(`\b(?:lease\s+term|rental\s+period)\b`),
		regexp.MustCompile(`\b(?:security\s+deposit)\b`),
	},
	TypePurchase: {
		regexp.MustCompile(`\b(?:purchase\s+agreement|sales\s+agreement)\b`),
		regexp.MustCompile(`\b(?:buyer|seller)\b`),
		regexp.MustCompile(`\b(?:purchase\s+price|sale\s+price)\b`),
		regexp.MustCompile(`\b(?:purchase\s+order|po)\b`),
	},
}

var classifierBonusWords = map[ContractType][]string{
	TypeNDA:        {"confidential", "disclosure", "secrets"},
	TypeEmployment: {"salary", "employee", "job"},
	TypeService:    {"service", "consulting", "sla"},
}

// valueTemplate is one ordered attempt at the total contract value. The first
// template whose capture parses as a positive number wins; confidence is the
// template's fixed reliability, not a function of the match.
type valueTemplate struct {
	Name       string
	Re         *regexp.Regexp
	Confidence float64
}

var financialValueTemplates = []valueTemplate{
	{
		Name:       "explicit_total",
		Re:         regexp.MustCompile(`(?i)(?:total|contract|agreement)\s+(?:value|amount|price|cost):\s*` + currencyClass + `?\s*([\d,]+\.?\d*)`),
		Confidence: 0.9,
	},
	{
		Name:       "labeled_compensation",
		Re:         regexp.MustCompile(`(?i)(?:salary|compensation|payment):\s*` + currencyClass + `?\s*([\d,]+\.?\d*)`),
		Confidence: 0.9,
	},
	{
		Name:       "periodic_rate",
		Re:         regexp.MustCompile(`(?i)(?:annual|monthly|weekly|daily)\s+(?:rate|salary|payment):\s*` + currencyClass + `?\s*([\d,]+\.?\d*)`),
		Confidence: 0.8,
	},
	{
		Name:       "generic_amount",
		Re:         regexp.MustCompile(`(?i)` + currencyClass + `\s*([\d,]+\.?\d*)\s*(?:per\s+(?:year|month|annum|day))?`),
		Confidence: 0.8,
	},
}

// lineItemTemplate captures a billable entry. DescGroup/PriceGroup index the
// submatches holding the description and unit price.
type lineItemTemplate struct {
	Name       string
	Re         *regexp.Regexp
	DescGroup  int
	PriceGroup int
}

var lineItemTemplates = []lineItemTemplate{
	{
		Name:       "qty_at_price",
		Re:         regexp.MustCompile(`(?i)(\d+)\s*x\s+([^$\n]+?)\s+@\s*` + currencyClass + `?\s*([\d,]+\.?\d*)`),
		DescGroup:  2,
		PriceGroup: 3,
	},
	{
		Name:       "price_per_unit",
		Re:         regexp.MustCompile(`(?i)([^$\n]+?)\s+` + currencyClass + `?\s*([\d,]+\.?\d*)\s*(?:per|each|unit)`),
		DescGroup:  1,
		PriceGroup: 2,
	},
	{
		Name:       "labeled_item",
		Re:         regexp.MustCompile(`(?i)(?:item|service|product):\s*([^$\n]+?)\s*` + currencyClass + `?\s*([\d,]+\.?\d*)`),
		DescGroup:  1,
		PriceGroup: 2,
	},
}

// lineItemVocabulary gates line-item descriptions: a description must contain
// at least one of these business terms to be accepted.
var lineItemVocabulary = []string{
	"service", "product", "license", "support", "maintenance", "consulting",
	"development", "training", "software", "hardware", "equipment", "materials",
	"labor", "hour", "day", "month", "year", "project", "work", "deliverable",
	"implementation", "installation", "configuration", "customization",
	"integration", "testing", "deployment", "migration", "upgrade",
	"subscription", "hosting", "cloud", "saas", "platform", "solution",
}

// lineItemStopWords: a description made purely of these is rejected even
// before the vocabulary check.
var lineItemStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "for": true, "and": true,
	"or": true, "to": true, "in": true, "on": true, "at": true, "per": true,
	"each": true, "by": true, "with": true, "is": true, "are": true,
}

// companyPattern matches a party span; RoleHint, when set, is the explicit
// label the span was introduced with and takes precedence over all other
// role heuristics.
type companyPattern struct {
	Re       *regexp.Regexp
	RoleHint PartyRole
}

var companyPatterns = []companyPattern{
	{Re: regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Technologies?|Solutions?|Systems?|Corporation|Inc|LLC|Ltd|Pvt\.?\s+Ltd|Company|Co\.?|Group|Partners?|Associates?))`)},
	{Re: regexp.MustCompile(`(?i)(?:company|corporation|llc|inc|ltd|pvt\.?\s+ltd):\s*([^\n,;]+)`)},
	{Re: regexp.MustCompile(`(?i)(?:customer|client|buyer|purchaser):\s*([^\n,;]+)`), RoleHint: RoleCustomer},
	{Re: regexp.MustCompile(`(?i)(?:vendor|supplier|seller|provider):\s*([^\n,;]+)`), RoleHint: RoleVendor},
	{Re: regexp.MustCompile(`(?i)(?:party\s+a|first\s+party):\s*([^\n,;]+)`)},
	{Re: regexp.MustCompile(`(?i)(?:party\s+b|second\s+party):\s*([^\n,;]+)`)},
}

// roleKeywords map an explicit adjacent label (within the window preceding a
// party span) to the role it assigns.
type roleKeyword struct {
	Word string
	Role PartyRole
}

var roleKeywords = []roleKeyword{
	{Word: "disclosing party", Role: RoleDisclosingParty},
	{Word: "discloser", Role: RoleDisclosingParty},
	{Word: "receiving party", Role: RoleReceivingParty},
	{Word: "recipient", Role: RoleReceivingParty},
	{Word: "employer", Role: RoleEmployer},
	{Word: "employee", Role: RoleEmployee},
	{Word: "candidate", Role: RoleEmployee},
	{Word: "customer", Role: RoleCustomer},
	{Word: "client", Role: RoleCustomer},
	{Word: "buyer", Role: RoleCustomer},
	{Word: "purchaser", Role: RoleCustomer},
	{Word: "vendor", Role: RoleVendor},
	{Word: "supplier", Role: RoleVendor},
	{Word: "seller", Role: RoleVendor},
	{Word: "provider", Role: RoleVendor},
}

// roleKeywordWindow is how far back (in bytes) from a party span an explicit
// role label still counts as adjacent.
const roleKeywordWindow = 60

// companySuffixWords trigger the company heuristic in role assignment
// (an NDA party carrying one of these is treated as the disclosing party).
var companySuffixWords = []string{
	"technologies", "solutions", "systems", "corporation", "inc", "llc",
}

var accountNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s*(?:number|#|no\.?):\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)acc\s*(?:number|#|no\.?):\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)account:\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)contract\s*(?:id|#|no\.?):\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)id:\s*([A-Z0-9\-]+)`),
}

var billingContactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)billing\s+contact:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)billing\s+address:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)bill\s+to:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)contact:\s*([^\n]+)`),
}

var paymentTermsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s+terms:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)net\s+(\d+)`),
	regexp.MustCompile(`(?i)payable\s+within\s+(\d+)\s+days`),
	regexp.MustCompile(`(?i)payment\s+frequency:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)pay\s+schedule:\s*([^\n]+)`),
}

var paymentMethodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s+method:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)pay\s+by:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)via\s+([^\n]+)`),
	regexp.MustCompile(`(?i)through\s+([^\n]+)`),
}

// Duration patterns capture the numeric quantity and its unit together; only
// matches in term/contract context count.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\s*(?:years?|months?))\s*from`),
	regexp.MustCompile(`term.*?(\d+\s*(?:years?|months?))`),
	regexp.MustCompile(`(\d+\s*(?:years?|months?))\s*contract`),
}

// Revenue classification keyword cascade, highest priority first.
var (
	revenueNDAWords        = []string{"nda", "non-disclosure", "nondisclosure", "confidentiality"}
	revenueEmploymentWords = []string{"employment", "employee", "employer"}
	revenueMonthlyWords    = []string{"monthly", "subscription", "recurring"}
	revenueQuarterlyWords  = []string{"quarterly"}
	revenueAnnualWords     = []string{"annually", "yearly"}
)

// SLA pattern families. Unlike the other extractors these accumulate every
// distinct match, not just the first.
var slaUptimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%[^\n]*?uptime`),
	regexp.MustCompile(`(?i)uptime[^\n]*?(\d+\.?\d*)\s*%`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%[^\n]*?availability`),
	regexp.MustCompile(`(?i)availability[^\n]*?(\d+\.?\d*)\s*%`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%[^\n]*?service\s*level`),
}

var slaResponseTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)response\s*time[^\n]*?(\d+)\s*(?:hours?|days?|minutes?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|days?|minutes?)[^\n]*?response\s*time`),
	regexp.MustCompile(`(?i)critical[^\n]*?(\d+)\s*(?:hours?|minutes?)[^\n]*?response`),
	regexp.MustCompile(`(?i)high\s*priority[^\n]*?(\d+)\s*(?:hours?|minutes?)[^\n]*?response`),
	regexp.MustCompile(`(?i)resolution\s*time[^\n]*?(\d+)\s*(?:hours?|days?|minutes?)`),
	regexp.MustCompile(`(?i)p1[^\n]*?(\d+)\s*(?:hours?|minutes?)`),
	regexp.MustCompile(`(?i)p2[^\n]*?(\d+)\s*(?:hours?|minutes?)`),
}

var slaSupportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:24/7|8/5|9/5)\s*support`),
	regexp.MustCompile(`(?i)support[^\n]*?(?:24/7|8/5|9/5)`),
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:am|pm)?\s*-\s*\d{1,2}:\d{2}\s*(?:am|pm)?`),
	regexp.MustCompile(`(?i)\d+x\d+\s*business\s*hours`),
}

var slaMaintenancePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:scheduled|preventive|routine)\s+maintenance[^\n.]*`),
	regexp.MustCompile(`(?i)maintenance\s+windows?[^\n.]*`),
	regexp.MustCompile(`(?i)maintenance\s+(?:terms|schedule):\s*[^\n]+`),
}

var slaPenaltyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)penalt(?:y|ies)[^\n.]*`),
	regexp.MustCompile(`(?i)service\s+credits?[^\n.]*`),
	regexp.MustCompile(`(?i)liquidated\s+damages[^\n.]*`),
}

var slaRemedyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)remed(?:y|ies)[^\n.]*`),
	regexp.MustCompile(`(?i)escalation\s+(?:path|procedure|process)[^\n.]*`),
	regexp.MustCompile(`(?i)right\s+to\s+terminate[^\n.]*`),
}

// NDA clause checks for gap analysis, evaluated against lower-cased raw text.
var (
	ndaPeriodPhrases = []string{"confidentiality period", "term of confidentiality"}
	ndaDefinitionPhrases = []string{
		"confidential information means", "definition of confidential information",
		"confidential information shall mean",
	}
	ndaObligationPhrases = []string{
		"non-disclosure obligation", "nondisclosure obligation",
		"shall not disclose", "obligations of the receiving party",
	}
)
