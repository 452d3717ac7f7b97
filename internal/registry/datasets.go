// Package registry holds the static dataset catalog and code lookup
// tables for the NYC Open Data sources the report engine consumes.
package registry

// Socrata dataset identifiers on data.cityofnewyork.us. Names mirror
// the logical source names used throughout ingest and reporting.
const (
	PLUTO             = "64uk-42ks"
	HPDViolations     = "wvxf-dwi5"
	HPDComplaints     = "uwyv-629c"
	HPDRegistrations  = "tesw-yqqr"
	HPDContacts       = "feu5-w2e2"
	HPDLitigations    = "59kj-x8nc"
	HPDCharges        = "za5v-8tsk"
	HPDVacateOrders   = "tb8q-a3ar"
	HPDAEP            = "hcir-3275"
	HPDCONH           = "bzxi-2tsw"
	DOBViolations     = "3h2n-5cm9"
	DOBComplaints     = "eabe-havv"
	DOBJobFilings     = "ic3t-wcy2"
	DOBPermitsIssued  = "ipu4-2q9a"
	DOBSafety         = "855j-jady"
	ECBViolations     = "6bgk-3dad"
	DOBVacateOrders   = "rbx6-tga4"
	ACRISLegals       = "8h5j-fqxa"
	DOFSales          = "usep-8jbt"
	Evictions         = "6z8x-wfk4"
	RodentInspections = "p937-wjvj"
	BedbugReports     = "wz6d-d3jb"
	SpeculationWatch  = "adax-9mit"
	RentStabilized    = "ucdy-byxd"
	SubsidizedHousing = "hg8x-zxpr"
	NYCHA             = "evjd-dqpz"
	ServiceRequests   = "erm2-nwe9"
)
