package report

import (
	"fmt"

	"github.com/openhousing/bldgreport/internal/model"
)

const maxRedFlags = 10

// redFlags evaluates the threshold rules in order. Rules are
// independent: each fires at most once and any subset may fire.
func redFlags(in scoreInputs, rsLostUnits int) []model.RedFlag {
	var flags []model.RedFlag

	if in.hpd.classC > 0 {
		plural := ""
		if in.hpd.classC > 1 {
			plural = "s"
		}
		flags = append(flags, model.RedFlag{
			Severity:    "critical",
			Title:       fmt.Sprintf("%d Class C Violation%s", in.hpd.classC, plural),
			Description: "Immediately hazardous. Must be corrected within 24 hours.",
		})
	}
	if in.programs.AEP {
		flags = append(flags, model.RedFlag{
			Severity:    "critical",
			Title:       "Alternative Enforcement Program",
			Description: "Building is in HPD's worst buildings program.",
		})
	}
	if in.programs.VacateOrder {
		flags = append(flags, model.RedFlag{
			Severity:    "critical",
			Title:       "Vacate Order",
			Description: "Building has/had a vacate order. Parts may be uninhabitable.",
		})
	}
	if in.hpdComp.heat >= 5 {
		flags = append(flags, model.RedFlag{
			Severity:    "critical",
			Title:       fmt.Sprintf("%d Heat Complaints", in.hpdComp.heat),
			Description: "Very high heat/hot water complaints this year.",
		})
	}
	if in.bedbugs >= 2 {
		flags = append(flags, model.RedFlag{
			Severity:    "critical",
			Title:       fmt.Sprintf("%d Bedbug Reports", in.bedbugs),
			Description: "Multiple bedbug reports. May indicate ongoing infestation.",
		})
	}
	if in.evictions3Y >= 5 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%d Evictions in 3 Years", in.evictions3Y),
			Description: "Higher than average eviction rate.",
		})
	}
	if in.lit.open >= 2 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%d Open Legal Cases", in.lit.open),
			Description: fmt.Sprintf("HPD legal action. Total penalties: %s", formatMoney(in.lit.totalPenalties)),
		})
	}
	if in.programs.SpeculationWatch {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       "Speculation Watch List",
			Description: "Sold at price suggesting speculative investment.",
		})
	}
	if in.hpd.open >= 15 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%d Open HPD Violations", in.hpd.open),
			Description: "High number of unresolved violations.",
		})
	}
	if in.totalCharges > 10000 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%s HPD Charges", formatMoney(in.totalCharges)),
			Description: "HPD performed emergency repairs. Unresponsive landlord.",
		})
	}
	if rsLostUnits > 5 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%d RS Units Lost", rsLostUnits),
			Description: "Building lost rent stabilized units over time.",
		})
	}
	if in.rodentFailed >= 3 {
		flags = append(flags, model.RedFlag{
			Severity:    "warning",
			Title:       fmt.Sprintf("%d Failed Rodent Inspections", in.rodentFailed),
			Description: "Ongoing rodent issues.",
		})
	}
	if in.programs.CONH {
		flags = append(flags, model.RedFlag{
			Severity:    "info",
			Title:       "CONH Required",
			Description: "Certificate of No Harassment required before alterations.",
		})
	}

	if len(flags) > maxRedFlags {
		flags = flags[:maxRedFlags]
	}
	return flags
}
