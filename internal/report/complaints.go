package report

import (
	"sort"
	"strings"
	"time"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const (
	recentHPDComplaints = 25
	recentDOBComplaints = 15
	recent311Requests   = 15
	combinedComplaints  = 40
	categoryShareTop    = 8
)

// hpdComplaints is the normalized view of housing complaints.
type hpdComplaints struct {
	total      int
	recentYear int
	heat       int
	byYear     map[string]int
	byCategory map[string]int
	recent     []model.Complaint
	dates      []string
}

// isHeatComplaint reports whether the complaint type or major category
// mentions heat or hot water.
func isHeatComplaint(r socrata.Record) bool {
	text := strings.ToLower(firstOf(r.Str("complainttype"), r.Str("majorcategory")))
	return strings.Contains(text, "heat") || strings.Contains(text, "hot water")
}

func normalizeHPDComplaints(records []socrata.Record, y1 time.Time) hpdComplaints {
	c := hpdComplaints{
		total:      len(records),
		byYear:     make(map[string]int),
		byCategory: make(map[string]int),
	}

	for _, r := range records {
		date := r.Str("receiveddate")
		c.dates = append(c.dates, date)
		if t, ok := parseDate(date); ok && !t.Before(y1) {
			c.recentYear++
			if isHeatComplaint(r) {
				c.heat++
			}
		}
		if yr := yearOf(date); yr != "" {
			c.byYear[yr]++
		}
		c.byCategory[Classify(firstOf(r.Str("complainttype"), r.Str("majorcategory")))]++
	}

	for i, r := range records {
		if i >= recentHPDComplaints {
			break
		}
		date := r.Str("receiveddate")
		ctype := firstOf(r.Str("complainttype"), r.Str("majorcategory"), "Unknown")
		status := firstOf(r.Str("status"), "Unknown")
		c.recent = append(c.recent, model.Complaint{
			ID:     idOr(r.Str("complaintid"), "HPD", date, ctype),
			Source: "HPD",
			Date:   date,
			Type:   ctype,
			Status: status,
			Unit:   r.Str("apartment"),
		})
	}

	return c
}

// dobComplaints is the normalized view of buildings-department
// complaints.
type dobComplaints struct {
	total      int
	recentYear int
	recent     []model.Complaint
}

func normalizeDOBComplaints(records []socrata.Record, y1 time.Time) dobComplaints {
	c := dobComplaints{total: len(records)}

	for _, r := range records {
		if t, ok := parseDate(r.Str("date_entered")); ok && !t.Before(y1) {
			c.recentYear++
		}
	}

	for i, r := range records {
		if i >= recentDOBComplaints {
			break
		}
		date := r.Str("date_entered")
		ctype := firstOf(r.Str("complaint_category"), "DOB")
		c.recent = append(c.recent, model.Complaint{
			ID:     idOr(r.Str("complaint_number"), "DOB", date, ctype),
			Source: "DOB",
			Date:   date,
			Type:   ctype,
			Status: firstOf(r.Str("status"), "Unknown"),
		})
	}

	return c
}

// sr311 is the normalized view of 311 service requests.
type sr311 struct {
	total  int
	byType map[string]int
	recent []model.Complaint
}

func normalize311(records []socrata.Record) sr311 {
	s := sr311{
		total:  len(records),
		byType: make(map[string]int),
	}

	for _, r := range records {
		s.byType[firstOf(r.Str("complaint_type"), "Other")]++
	}

	for i, r := range records {
		if i >= recent311Requests {
			break
		}
		date := r.Str("created_date")
		ctype := r.Str("complaint_type")
		s.recent = append(s.recent, model.Complaint{
			ID:         idOr(r.Str("unique_key"), "311", date, ctype),
			Source:     "311",
			Date:       date,
			Type:       ctype,
			Status:     r.Str("status"),
			Descriptor: r.Str("descriptor"),
		})
	}

	return s
}

// combineRecentComplaints merges the per-source recent slices into one
// date-descending list.
func combineRecentComplaints(hpd, dob, sr []model.Complaint) []model.Complaint {
	combined := make([]model.Complaint, 0, len(hpd)+len(dob)+len(sr))
	combined = append(combined, hpd...)
	combined = append(combined, dob...)
	combined = append(combined, sr...)
	sort.SliceStable(combined, func(i, j int) bool {
		ti, iok := parseDate(combined[i].Date)
		tj, jok := parseDate(combined[j].Date)
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
	if len(combined) > combinedComplaints {
		combined = combined[:combinedComplaints]
	}
	return combined
}

// categoryShares renders the complaint category histogram as the top
// slice with whole-number percentages of the total.
func categoryShares(byCategory map[string]int) []model.CategoryShare {
	total := 0
	for _, n := range byCategory {
		total += n
	}

	counts := sortedCategoryCounts(byCategory)
	if len(counts) > categoryShareTop {
		counts = counts[:categoryShareTop]
	}

	shares := make([]model.CategoryShare, 0, len(counts))
	for _, c := range counts {
		pct := 0
		if total > 0 {
			pct = int(float64(c.Count)/float64(total)*100 + 0.5)
		}
		shares = append(shares, model.CategoryShare{Category: c.Category, Count: c.Count, Pct: pct})
	}
	return shares
}
