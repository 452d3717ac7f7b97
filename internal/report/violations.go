package report

import (
	"sort"
	"strings"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const (
	recentHPDViolations = 40
	recentDOBViolations = 25
	combinedRecentCap   = 50
	hpdYearFloor        = "2010"
)

// hpdViolations is the normalized view of housing-maintenance
// violations for one parcel.
type hpdViolations struct {
	total      int
	open       int
	classA     int
	classB     int
	classC     int
	byYear     map[string]model.YearClassCounts
	byCategory map[string]int
	recent     []model.Violation
	dates      []string
}

// hpdViolationOpen reports whether a violation is open: the status
// text contains "open" OR the status date is absent. Both disjuncts
// are authoritative.
func hpdViolationOpen(r socrata.Record) bool {
	return strings.Contains(strings.ToLower(r.Str("currentstatus")), "open") ||
		r.Str("currentstatusdate") == ""
}

func normalizeHPDViolations(records []socrata.Record) hpdViolations {
	v := hpdViolations{
		total:      len(records),
		byYear:     make(map[string]model.YearClassCounts),
		byCategory: make(map[string]int),
	}

	for _, r := range records {
		class := r.Str("class")
		if hpdViolationOpen(r) {
			v.open++
			switch class {
			case "A":
				v.classA++
			case "B":
				v.classB++
			case "C":
				v.classC++
			}
		}

		date := firstOf(r.Str("inspectiondate"), r.Str("novissueddate"))
		v.dates = append(v.dates, date)
		if yr := yearOf(date); yr != "" && yr >= hpdYearFloor {
			counts := v.byYear[yr]
			counts.Total++
			switch class {
			case "A":
				counts.ClassA++
			case "B":
				counts.ClassB++
			case "C":
				counts.ClassC++
			}
			v.byYear[yr] = counts
		}

		v.byCategory[Classify(r.Str("novdescription"))]++
	}

	for i, r := range records {
		if i >= recentHPDViolations {
			break
		}
		date := firstOf(r.Str("inspectiondate"), r.Str("novissueddate"))
		desc := r.Str("novdescription")
		if desc == "" {
			desc = "No description"
		}
		class := r.Str("class")
		if class == "" {
			class = "A"
		}
		status := "Closed"
		if strings.Contains(strings.ToLower(r.Str("currentstatus")), "open") {
			status = "Open"
		}
		v.recent = append(v.recent, model.Violation{
			ID:          idOr(r.Str("violationid"), "HPD", date, desc),
			Source:      "HPD",
			Date:        date,
			Class:       class,
			Type:        r.Str("novtype"),
			Description: desc,
			Status:      status,
			Unit:        r.Str("apartment"),
			Story:       r.Str("story"),
			Category:    Classify(r.Str("novdescription")),
		})
	}

	return v
}

// dobViolations is the normalized view of buildings-department
// violations.
type dobViolations struct {
	total  int
	open   int
	byYear map[string]int
	recent []model.Violation
	dates  []string
}

// dobViolationOpen reports whether a DOB violation is open: it has no
// disposition date (and a real issue date).
func dobViolationOpen(r socrata.Record) bool {
	return r.Str("disposition_date") == "" && r.Str("issue_date") != ""
}

func normalizeDOBViolations(records []socrata.Record) dobViolations {
	v := dobViolations{
		total:  len(records),
		byYear: make(map[string]int),
	}

	for _, r := range records {
		if dobViolationOpen(r) {
			v.open++
		}
		date := r.Str("issue_date")
		v.dates = append(v.dates, date)
		if yr := yearOf(date); yr != "" {
			v.byYear[yr]++
		}
	}

	for i, r := range records {
		if i >= recentDOBViolations {
			break
		}
		date := r.Str("issue_date")
		desc := firstOf(r.Str("description"), r.Str("violation_type_description"))
		status := "Open"
		if r.Str("disposition_date") != "" {
			status = "Closed"
		}
		v.recent = append(v.recent, model.Violation{
			ID:          idOr(r.Str("isn_dob_bis_extract"), "DOB", date, desc),
			Source:      "DOB",
			Date:        date,
			Type:        r.Str("violation_type"),
			Description: desc,
			Status:      status,
			Category:    Classify(r.Str("description")),
		})
	}

	return v
}

// ecbViolations is the normalized view of environmental-control-board
// violations.
type ecbViolations struct {
	total     int
	open      int
	penalties float64
}

// ecbViolationOpen reports whether an ECB violation is open: its
// status text contains neither "resolve" nor "dismiss".
func ecbViolationOpen(r socrata.Record) bool {
	status := strings.ToLower(r.Str("ecb_violation_status"))
	return !strings.Contains(status, "resolve") && !strings.Contains(status, "dismiss")
}

func normalizeECBViolations(records []socrata.Record) ecbViolations {
	v := ecbViolations{total: len(records)}
	for _, r := range records {
		if ecbViolationOpen(r) {
			v.open++
		}
		v.penalties += r.Float("penalty_balance_due")
	}
	return v
}

// combineRecentViolations merges the HPD and DOB recent slices into a
// single date-descending list for the violations summary. Entries
// without a parseable date sort last.
func combineRecentViolations(hpd, dob []model.Violation) []model.Violation {
	combined := make([]model.Violation, 0, len(hpd)+len(dob))
	combined = append(combined, hpd...)
	combined = append(combined, dob...)
	sort.SliceStable(combined, func(i, j int) bool {
		ti, iok := parseDate(combined[i].Date)
		tj, jok := parseDate(combined[j].Date)
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
	if len(combined) > combinedRecentCap {
		combined = combined[:combinedRecentCap]
	}
	return combined
}

// sortedCategoryCounts renders a category histogram as a
// count-descending list with deterministic tie order.
func sortedCategoryCounts(byCategory map[string]int) []model.CategoryCount {
	counts := make([]model.CategoryCount, 0, len(byCategory))
	for cat, n := range byCategory {
		counts = append(counts, model.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})
	return counts
}
