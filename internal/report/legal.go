package report

import (
	"strings"
	"time"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const (
	recentLitigations = 15
	recentEvictions   = 15
)

// litigations is the normalized view of housing-court cases.
type litigations struct {
	total          int
	open           int
	totalPenalties float64
	byType         map[string]int
	recent         []model.Litigation
}

// litigationOpen reports whether a case is open: its status does not
// contain "closed".
func litigationOpen(r socrata.Record) bool {
	return !strings.Contains(strings.ToLower(r.Str("casestatus")), "closed")
}

func normalizeLitigations(records []socrata.Record) litigations {
	l := litigations{
		total:  len(records),
		byType: make(map[string]int),
	}

	for _, r := range records {
		if litigationOpen(r) {
			l.open++
		}
		l.byType[firstOf(r.Str("casetype"), "Other")]++
		l.totalPenalties += r.Float("penalty")
	}

	for i, r := range records {
		if i >= recentLitigations {
			break
		}
		date := r.Str("caseopendate")
		caseType := r.Str("casetype")
		l.recent = append(l.recent, model.Litigation{
			ID:           idOr(r.Str("litigationid"), "HPD-LIT", date, caseType),
			CaseType:     caseType,
			CaseOpenDate: date,
			CaseStatus:   r.Str("casestatus"),
			Penalty:      r.Float("penalty"),
			FindingDate:  r.Str("findingdate"),
		})
	}

	return l
}

// normalizeCharges totals emergency-repair charges billed to the owner.
func normalizeCharges(records []socrata.Record) model.ChargeSummary {
	c := model.ChargeSummary{Total: len(records)}
	for _, r := range records {
		c.TotalAmount += r.Float("charge")
	}
	return c
}

// evictions is the normalized view of executed marshal evictions.
type evictions struct {
	total  int
	last3  int
	byYear map[string]int
	recent []model.Eviction
	dates  []string
}

func normalizeEvictions(records []socrata.Record, y3 time.Time) evictions {
	e := evictions{
		total:  len(records),
		byYear: make(map[string]int),
	}

	for _, r := range records {
		date := r.Str("executed_date")
		e.dates = append(e.dates, date)
		if t, ok := parseDate(date); ok && !t.Before(y3) {
			e.last3++
		}
		if yr := yearOf(date); yr != "" {
			e.byYear[yr]++
		}
	}

	for i, r := range records {
		if i >= recentEvictions {
			break
		}
		date := r.Str("executed_date")
		e.recent = append(e.recent, model.Eviction{
			ID:           idOr(r.Str("unique_id"), "EVICTION", date, r.Str("marshal_last_name")),
			ExecutedDate: date,
			Type:         r.Str("residential_commercial"),
			Marshal:      r.Str("marshal_last_name"),
		})
	}

	return e
}
