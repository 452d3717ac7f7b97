package report

import (
	"fmt"
	"math"

	"github.com/openhousing/bldgreport/internal/model"
)

// categoryScores computes the six dimension scores. Unlike the
// composite score the per-input deductions are not capped, only
// floored at zero.
func categoryScores(in scoreInputs, dobSafety int) []model.CategoryScore {
	heatViol := in.hpd.byCategory[CategoryHeat]
	pestViol := in.hpd.byCategory[CategoryPests]
	fireViol := in.hpd.byCategory[CategoryFireSafety]
	gasViol := in.hpd.byCategory[CategoryGas]

	specPenalty := 0
	if in.programs.SpeculationWatch {
		specPenalty = 15
	}

	return []model.CategoryScore{
		{
			Name:   "Heat Reliability",
			Score:  floorScore(100 - float64(in.hpdComp.heat)*12 - float64(heatViol)*3),
			Detail: fmt.Sprintf("%d heat complaints/yr", in.hpdComp.heat),
		},
		{
			Name:   "Pest Control",
			Score:  floorScore(100 - float64(pestViol)*8 - float64(in.rodentFailed)*10 - float64(in.bedbugs)*15),
			Detail: fmt.Sprintf("%d failed inspections, %d bedbug reports", in.rodentFailed, in.bedbugs),
		},
		{
			Name:   "Building Maintenance",
			Score:  floorScore(100 - float64(in.hpd.open)*3 - float64(in.dob.open)*4),
			Detail: fmt.Sprintf("%d open violations", in.hpd.open+in.dob.open),
		},
		{
			Name:   "Safety",
			Score:  floorScore(100 - float64(in.hpd.classC)*20 - float64(fireViol)*10 - float64(gasViol)*15 - float64(dobSafety)*8),
			Detail: fmt.Sprintf("%d Class C violations", in.hpd.classC),
		},
		{
			Name:   "Landlord Responsiveness",
			Score:  floorScore(100 - float64(in.lit.open)*15 - math.Min(in.totalCharges/1000, 20)),
			Detail: fmt.Sprintf("%d legal cases, %s charges", in.lit.open, formatMoney(in.totalCharges)),
		},
		{
			Name:   "Tenant Stability",
			Score:  floorScore(100 - float64(in.evictions3Y)*12 - float64(specPenalty)),
			Detail: fmt.Sprintf("%d evictions in 3 years", in.evictions3Y),
		},
	}
}

func floorScore(v float64) int {
	return int(math.Round(math.Max(0, v)))
}
