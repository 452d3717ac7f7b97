package model

// Report is the full building risk report assembled for one parcel.
type Report struct {
	BBL            string                  `json:"bbl"`
	Building       *BuildingProfile        `json:"building"`
	Score          CompositeScore          `json:"score"`
	CategoryScores []CategoryScore         `json:"categoryScores"`
	Violations     ViolationsSummary       `json:"violations"`
	Complaints     ComplaintsSummary       `json:"complaints"`
	Litigations    LitigationSummary       `json:"litigations"`
	Charges        ChargeSummary           `json:"charges"`
	Evictions      EvictionSummary         `json:"evictions"`
	Sales          SalesSummary            `json:"sales"`
	Permits        PermitSummary           `json:"permits"`
	Rodents        RodentSummary           `json:"rodents"`
	Bedbugs        BedbugSummary           `json:"bedbugs"`
	Programs       Programs                `json:"programs"`
	Landlord       LandlordProfile         `json:"landlord"`
	RiskAssessment []RiskAssessment        `json:"riskAssessment"`
	RedFlags       []RedFlag               `json:"redFlags"`
	Timeline       []TimelineEvent         `json:"timeline"`
	MonthlyTrend   []MonthlyBucket         `json:"monthlyTrend"`
	YearlyStats    []YearlyBucket          `json:"yearlyStats"`
	Sources        map[string]SourceHealth `json:"sources"`
	LastUpdated    string                  `json:"lastUpdated"`
	Disclaimer     string                  `json:"dataDisclaimer"`
}

// SourceHealth records whether a dataset fetch succeeded and how many
// records it returned. An empty-but-ok source genuinely has no data;
// a not-ok source failed or timed out and was degraded to empty.
type SourceHealth struct {
	Records int  `json:"records"`
	OK      bool `json:"ok"`
}

// BuildingProfile is the passthrough profile built from the tax-lot
// record plus rent-stabilization, subsidy, and public-housing flags.
type BuildingProfile struct {
	BBL               string   `json:"bbl"`
	Address           string   `json:"address"`
	Borough           string   `json:"borough"`
	Neighborhood      string   `json:"neighborhood"`
	Zipcode           string   `json:"zipcode"`
	YearBuilt         int      `json:"yearBuilt,omitempty"`
	UnitsRes          int      `json:"unitsRes"`
	UnitsTotal        int      `json:"unitsTotal"`
	Floors            int      `json:"floors"`
	BuildingClass     string   `json:"buildingClass"`
	BuildingClassDesc string   `json:"buildingClassDesc"`
	OwnerName         string   `json:"ownerName"`
	OwnerType         string   `json:"ownerType"`
	Latitude          float64  `json:"latitude,omitempty"`
	Longitude         float64  `json:"longitude,omitempty"`
	LotArea           int      `json:"lotArea,omitempty"`
	BuildingArea      int      `json:"buildingArea,omitempty"`
	ZoningDistrict    string   `json:"zoneDist1"`
	AssessedValue     int      `json:"assessedValue,omitempty"`
	YearAltered1      int      `json:"yearAltered1,omitempty"`
	YearAltered2      int      `json:"yearAltered2,omitempty"`
	Landmark          string   `json:"landmark,omitempty"`
	HistoricDistrict  string   `json:"histDist,omitempty"`
	RentStabilized    bool     `json:"isRentStabilized"`
	RentStabUnits     int      `json:"rentStabilizedUnits,omitempty"`
	RentStabLostUnits int      `json:"rsLostUnits,omitempty"`
	Subsidized        bool     `json:"isSubsidized"`
	SubsidyPrograms   []string `json:"subsidyPrograms,omitempty"`
	NYCHA             bool     `json:"isNycha"`
	NYCHADevelopment  string   `json:"nychaDev,omitempty"`
}

// CompositeScore is the single 0-100 headline score.
type CompositeScore struct {
	Overall   int            `json:"overall"`
	Grade     string         `json:"grade"`
	Label     string         `json:"label"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ScoreBreakdown holds the open/recent counts feeding the composite score.
type ScoreBreakdown struct {
	HPDViolations int `json:"hpdViolations"`
	DOBViolations int `json:"dobViolations"`
	ECBViolations int `json:"ecbViolations"`
	Complaints    int `json:"complaints"`
	Litigations   int `json:"litigations"`
	Evictions     int `json:"evictions"`
	Pests         int `json:"pests"`
}

// CategoryScore is one of the six fixed risk dimensions.
type CategoryScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Detail string `json:"detail"`
}

// RiskAssessment maps a category score to a discrete risk level.
type RiskAssessment struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Detail   string `json:"detail"`
	Level    string `json:"level"`
}

// RedFlag is a rule-triggered warning. Severity is one of
// "critical", "warning", or "info".
type RedFlag struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TimelineEvent is a single dated occurrence in the merged history.
type TimelineEvent struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Source      string `json:"source"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Status      string `json:"status,omitempty"`
}

// YearClassCounts buckets housing violations by class within a year.
type YearClassCounts struct {
	Total  int `json:"total"`
	ClassA int `json:"a"`
	ClassB int `json:"b"`
	ClassC int `json:"c"`
}

// CategoryCount pairs a classifier label with a record count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryShare adds the percentage of the total to a category count.
type CategoryShare struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Pct      int    `json:"pct"`
}

// Violation is a normalized housing or buildings violation record.
type Violation struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Class       string `json:"class,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Unit        string `json:"unit,omitempty"`
	Story       string `json:"story,omitempty"`
	Category    string `json:"category"`
}

// ViolationsSummary aggregates all violation sources.
type ViolationsSummary struct {
	HPD    HPDViolationStats `json:"hpd"`
	DOB    DOBViolationStats `json:"dob"`
	ECB    ECBViolationStats `json:"ecb"`
	Safety SafetyStats       `json:"safety"`
	Recent []Violation       `json:"recent"`
}

// HPDViolationStats summarizes housing-maintenance violations.
type HPDViolationStats struct {
	Total      int                        `json:"total"`
	Open       int                        `json:"open"`
	ClassA     int                        `json:"classA"`
	ClassB     int                        `json:"classB"`
	ClassC     int                        `json:"classC"`
	ByYear     map[string]YearClassCounts `json:"byYear"`
	ByCategory []CategoryCount            `json:"byCategory"`
}

// DOBViolationStats summarizes buildings-department violations.
type DOBViolationStats struct {
	Total  int            `json:"total"`
	Open   int            `json:"open"`
	ByYear map[string]int `json:"byYear"`
}

// ECBViolationStats summarizes environmental-control-board violations.
type ECBViolationStats struct {
	Total         int     `json:"total"`
	Open          int     `json:"open"`
	PenaltiesOwed float64 `json:"penaltiesOwed"`
}

// SafetyStats counts facade/boiler/elevator safety violations.
type SafetyStats struct {
	Total int `json:"total"`
}

// Complaint is a normalized complaint or service request.
type Complaint struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Unit       string `json:"unit,omitempty"`
	Descriptor string `json:"descriptor,omitempty"`
}

// ComplaintsSummary aggregates all complaint sources.
type ComplaintsSummary struct {
	HPD        HPDComplaintStats `json:"hpd"`
	DOB        DOBComplaintStats `json:"dob"`
	SR311      SR311Stats        `json:"sr311"`
	Recent     []Complaint       `json:"recent"`
	ByCategory []CategoryShare   `json:"byCategory"`
}

// HPDComplaintStats summarizes housing complaints.
type HPDComplaintStats struct {
	Total        int            `json:"total"`
	RecentYear   int            `json:"recentYear"`
	HeatHotWater int            `json:"heatHotWater"`
	ByYear       map[string]int `json:"byYear"`
}

// DOBComplaintStats summarizes buildings-department complaints.
type DOBComplaintStats struct {
	Total      int `json:"total"`
	RecentYear int `json:"recentYear"`
}

// SR311Stats summarizes 311 service requests.
type SR311Stats struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
}

// Litigation is a normalized housing-court case.
type Litigation struct {
	ID           string  `json:"id"`
	CaseType     string  `json:"caseType"`
	CaseOpenDate string  `json:"caseOpenDate"`
	CaseStatus   string  `json:"caseStatus"`
	Penalty      float64 `json:"penalty,omitempty"`
	FindingDate  string  `json:"findingDate,omitempty"`
}

// LitigationSummary aggregates housing-court cases.
type LitigationSummary struct {
	Total          int            `json:"total"`
	Open           int            `json:"open"`
	TotalPenalties float64        `json:"totalPenalties"`
	ByType         map[string]int `json:"byType"`
	Recent         []Litigation   `json:"recent"`
}

// ChargeSummary totals emergency-repair and related charges.
type ChargeSummary struct {
	Total       int     `json:"total"`
	TotalAmount float64 `json:"totalAmount"`
}

// Eviction is a normalized marshal eviction record.
type Eviction struct {
	ID           string `json:"id"`
	ExecutedDate string `json:"executedDate"`
	Type         string `json:"type"`
	Marshal      string `json:"marshal,omitempty"`
}

// EvictionSummary aggregates executed evictions.
type EvictionSummary struct {
	Total      int            `json:"total"`
	Last3Years int            `json:"last3Years"`
	ByYear     map[string]int `json:"byYear"`
	Recent     []Eviction     `json:"recent"`
}

// Sale is a normalized property sale.
type Sale struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SalesSummary aggregates property sales plus the recorded-document count.
type SalesSummary struct {
	Total          int     `json:"total"`
	Recent         []Sale  `json:"recent"`
	LastSaleDate   string  `json:"lastSaleDate,omitempty"`
	LastSaleAmount float64 `json:"lastSaleAmount,omitempty"`
	Documents      int     `json:"documents"`
}

// Permit is a normalized construction job filing.
type Permit struct {
	JobNumber     string  `json:"jobNumber"`
	JobType       string  `json:"jobType"`
	JobTypeDesc   string  `json:"jobTypeDesc"`
	FilingDate    string  `json:"filingDate"`
	JobStatus     string  `json:"jobStatus"`
	JobStatusDesc string  `json:"jobStatusDesc"`
	WorkType      string  `json:"workType,omitempty"`
	EstimatedCost float64 `json:"estimatedCost,omitempty"`
	Applicant     string  `json:"applicant,omitempty"`
}

// PermitSummary aggregates job filings and issued permits.
type PermitSummary struct {
	Total            int      `json:"total"`
	Issued           int      `json:"issued"`
	MajorAlterations int      `json:"majorAlterations"`
	RecentActivity   int      `json:"recentActivity"`
	Recent           []Permit `json:"recent"`
}

// RodentInspection is a normalized health-department rodent inspection.
type RodentInspection struct {
	Date   string `json:"date"`
	Result string `json:"result"`
	Type   string `json:"type"`
}

// RodentSummary aggregates rodent inspections.
type RodentSummary struct {
	TotalInspections int                `json:"totalInspections"`
	Failed           int                `json:"failed"`
	Passed           int                `json:"passed"`
	Recent           []RodentInspection `json:"recent"`
}

// BedbugSummary aggregates bedbug filings.
type BedbugSummary struct {
	Reports        int    `json:"reports"`
	LastReportDate string `json:"lastReportDate,omitempty"`
}

// Programs holds enforcement and oversight program flags.
type Programs struct {
	AEP              bool     `json:"aep"`
	CONH             bool     `json:"conh"`
	SpeculationWatch bool     `json:"speculationWatch"`
	Subsidized       bool     `json:"subsidized"`
	SubsidyPrograms  []string `json:"subsidyPrograms,omitempty"`
	NYCHA            bool     `json:"nycha"`
	VacateOrder      bool     `json:"vacateOrder"`
}

// LandlordProfile is the resolved owner profile and sibling portfolio.
type LandlordProfile struct {
	Name                string              `json:"name"`
	Type                string              `json:"type"`
	RegistrationID      string              `json:"registrationId"`
	RegistrationEndDate string              `json:"registrationEndDate"`
	ManagementCompany   string              `json:"managementCompany"`
	AgentName           string              `json:"agentName"`
	AgentAddress        string              `json:"agentAddress"`
	OwnerAddress        string              `json:"ownerAddress"`
	PortfolioSize       int                 `json:"portfolioSize"`
	Portfolio           []PortfolioBuilding `json:"portfolio"`
}

// PortfolioBuilding is a sibling building under the same registration.
type PortfolioBuilding struct {
	BBL     string `json:"bbl"`
	Address string `json:"address"`
	Borough string `json:"borough"`
	Zipcode string `json:"zipcode"`
}

// MonthlyBucket is one point of the 36-month violation/complaint trend.
type MonthlyBucket struct {
	Month         string `json:"month"`
	Year          int    `json:"year"`
	MonthYear     string `json:"monthYear"`
	HPDViolations int    `json:"hpdViolations"`
	DOBViolations int    `json:"dobViolations"`
	Complaints    int    `json:"complaints"`
	Total         int    `json:"total"`
}

// YearlyBucket is one point of the 11-year history series.
type YearlyBucket struct {
	Year          int `json:"year"`
	HPDViolations int `json:"hpdViolations"`
	HPDClassC     int `json:"hpdClassC"`
	DOBViolations int `json:"dobViolations"`
	Complaints    int `json:"complaints"`
	Evictions     int `json:"evictions"`
}
