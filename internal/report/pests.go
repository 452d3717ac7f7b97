package report

import (
	"strings"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const recentRodentInspections = 10

// rodentFailed reports whether an inspection found rodent activity.
func rodentFailed(r socrata.Record) bool {
	result := strings.ToLower(r.Str("result"))
	return strings.Contains(result, "active") ||
		strings.Contains(result, "rat") ||
		strings.Contains(result, "mice") ||
		strings.Contains(result, "evidence")
}

// rodentPassed reports whether an inspection was clean. Checked
// independently of rodentFailed: a "no evidence" result matches both.
func rodentPassed(r socrata.Record) bool {
	result := strings.ToLower(r.Str("result"))
	return strings.Contains(result, "pass") || strings.Contains(result, "no evidence")
}

func normalizeRodents(records []socrata.Record) model.RodentSummary {
	s := model.RodentSummary{TotalInspections: len(records)}

	for _, r := range records {
		if rodentFailed(r) {
			s.Failed++
		}
		if rodentPassed(r) {
			s.Passed++
		}
	}

	for i, r := range records {
		if i >= recentRodentInspections {
			break
		}
		s.Recent = append(s.Recent, model.RodentInspection{
			Date:   r.Str("inspection_date"),
			Result: r.Str("result"),
			Type:   r.Str("inspection_type"),
		})
	}

	return s
}

func normalizeBedbugs(records []socrata.Record) model.BedbugSummary {
	s := model.BedbugSummary{Reports: len(records)}
	if len(records) > 0 {
		s.LastReportDate = records[0].Str("filing_date")
	}
	return s
}
