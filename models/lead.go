package models

// LeadStatus is the sales pipeline state of a lead.
type LeadStatus string

const (
	StatusNew           LeadStatus = "New"
	StatusHighPotential LeadStatus = "High Potential"
	StatusFollowUp      LeadStatus = "Follow-up"
	StatusNotConnected  LeadStatus = "Not Connected"
)

// LeadStatuses lists every valid status in display order.
var LeadStatuses = []LeadStatus{
	StatusNew,
	StatusHighPotential,
	StatusFollowUp,
	StatusNotConnected,
}

// ValidStatus reports whether s is one of the known pipeline statuses.
func ValidStatus(s LeadStatus) bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Location is where a lead's company is based.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Lead represents a single discovered prospect.
//
// RelevanceScore is assigned once at generation and never recomputed.
// Status and Notes are the only mutable fields.
type Lead struct {
	ID             string     `json:"id"`
	Company        string     `json:"company"`
	Industry       string     `json:"industry"`
	Location       Location   `json:"location"`
	Website        string     `json:"website"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	EmployeeCount  string     `json:"employeeCount"`
	Founded        int        `json:"founded"`
	Revenue        string     `json:"revenue"`
	Description    string     `json:"description"`
	Status         LeadStatus `json:"status"`
	RelevanceScore int        `json:"relevanceScore"`
	Notes          string     `json:"notes"`
}

// FilterCriteria constrains lead generation. Every field is optional; unset
// fields are unconstrained. Continent, Region and City are accepted for the
// benefit of the frontend's cascading selects but are not enforced during
// generation (only Country and Industry narrow the draw).
type FilterCriteria struct {
	Continent string `json:"continent"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Industry  string `json:"industry"`
}

// FilterAll is the sentinel meaning "no filter" for view criteria.
const FilterAll = "all"

// Sort directions for a lead listing.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort keys accepted by the lead listing.
const (
	SortByRelevance     = "relevanceScore"
	SortByCompany       = "company"
	SortByFounded       = "founded"
	SortByEmployeeCount = "employeeCount"
)

// ViewCriteria is the ephemeral search/filter/sort state applied to the
// stored lead collection for display. It is independent of FilterCriteria.
type ViewCriteria struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	Industry  string `json:"industry"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// Industries a generated lead can belong to.
var Industries = []string{
	"Technology", "Healthcare", "Finance", "Manufacturing", "Retail",
	"Education", "Real Estate", "Consulting", "Marketing", "Legal",
}

// EmployeeCounts and Revenues are ordered bracket enumerations; the index of
// a bracket is its rank when sorting.
var EmployeeCounts = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}

var Revenues = []string{"<$1M", "$1M-$10M", "$10M-$50M", "$50M-$100M", "$100M+"}

// EmployeeCountRank returns the position of the bracket in the ordered
// enumeration, or len(EmployeeCounts) for values outside it so they sort
// after every known bracket.
func EmployeeCountRank(bracket string) int {
	for i, b := range EmployeeCounts {
		if b == bracket {
			return i
		}
	}
	return len(EmployeeCounts)
}

// CompanyNames is the fixed pool lead companies are drawn from. Names may
// repeat within and across batches.
var CompanyNames = []string{
	"TechFlow Solutions", "DataVault Corp", "CloudMaster Inc", "InnovateTech",
	"NextGen AI", "CyberShield Pro", "QuantumLeap Labs", "SmartBridge Co",
	"FutureTech Systems", "AlphaByte Solutions", "MetaCore Industries",
	"DigiTransform Ltd", "NanoTech Innovations", "HyperScale Corp",
	"EliteCode Systems", "VisionTech Group", "ProActive Solutions",
	"DynamicFlow Inc", "TechPioneer Labs", "CodeCraft Studios",
}

// Countries lists every country with registered cities, in a fixed order so
// that a seeded generator draws deterministically.
var Countries = []string{
	"United States", "United Kingdom", "Germany", "Canada", "Australia",
}

// Cities registered per country. Countries absent from this table fall back
// to UnknownCity instead of failing generation.
var Cities = map[string][]string{
	"United States":  {"New York", "San Francisco", "Los Angeles", "Chicago", "Austin", "Seattle"},
	"United Kingdom": {"London", "Manchester", "Birmingham", "Edinburgh", "Bristol"},
	"Germany":        {"Berlin", "Munich", "Hamburg", "Frankfurt", "Cologne"},
	"Canada":         {"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa"},
	"Australia":      {"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"},
}

// UnknownCity is used when a requested country has no registered cities.
const UnknownCity = "Unknown City"

// Founded year bounds for generated companies.
const (
	FoundedMin = 2000
	FoundedMax = 2023
)

// Relevance score bounds. Batches are intentionally biased toward high
// relevance; this is a product decision, not a bug.
const (
	RelevanceMin = 60
	RelevanceMax = 100
)
