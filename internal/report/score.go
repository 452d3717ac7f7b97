package report

import (
	"math"

	"github.com/openhousing/bldgreport/internal/model"
)

// scoreInputs carries the aggregates the composite score is computed
// from. Class counts are counts among open violations.
type scoreInputs struct {
	hpd          hpdViolations
	dob          dobViolations
	ecb          ecbViolations
	hpdComp      hpdComplaints
	lit          litigations
	totalCharges float64
	evictions3Y  int
	rodentFailed int
	bedbugs      int
	programs     model.Programs
}

// capped returns count*perUnit bounded by cap. Each deduction term is
// capped independently so no single input category can dominate.
func capped(count int, perUnit, cap float64) float64 {
	return math.Min(float64(count)*perUnit, cap)
}

// computeScore applies the linear-deduction model: start at 100,
// subtract each capped term, then the flat program deductions, then
// clamp to [0,100] and round.
func computeScore(in scoreInputs) model.CompositeScore {
	score := 100.0
	score -= capped(in.hpd.classC, 15, 45)
	score -= capped(in.hpd.classB, 5, 25)
	score -= capped(in.hpd.classA, 1, 10)
	score -= capped(in.hpd.open, 1, 10)
	score -= capped(in.dob.open, 3, 15)
	score -= capped(in.ecb.open, 2, 10)
	score -= capped(in.hpdComp.heat, 4, 16)
	score -= capped(in.hpdComp.recentYear, 0.5, 8)
	score -= capped(in.lit.open, 6, 18)
	score -= capped(in.lit.total, 1, 10)
	score -= capped(in.evictions3Y, 4, 12)
	score -= capped(in.rodentFailed, 3, 9)
	score -= capped(in.bedbugs, 5, 15)

	if in.programs.AEP {
		score -= 20
	}
	if in.programs.SpeculationWatch {
		score -= 8
	}
	if in.programs.VacateOrder {
		score -= 15
	}
	if in.totalCharges > 10000 {
		score -= 10
	} else if in.totalCharges > 5000 {
		score -= 5
	}

	overall := int(math.Round(math.Max(0, math.Min(100, score))))

	return model.CompositeScore{
		Overall: overall,
		Grade:   gradeFor(overall),
		Label:   labelFor(overall),
		Breakdown: model.ScoreBreakdown{
			HPDViolations: in.hpd.open,
			DOBViolations: in.dob.open,
			ECBViolations: in.ecb.open,
			Complaints:    in.hpdComp.recentYear,
			Litigations:   in.lit.open,
			Evictions:     in.evictions3Y,
			Pests:         in.rodentFailed + in.bedbugs,
		},
	}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 55:
		return "D"
	default:
		return "F"
	}
}

func labelFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 55:
		return "Poor"
	default:
		return "Critical"
	}
}
