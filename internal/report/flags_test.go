package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhousing/bldgreport/internal/model"
)

func flagTitles(flags []model.RedFlag) []string {
	titles := make([]string, 0, len(flags))
	for _, f := range flags {
		titles = append(titles, f.Title)
	}
	return titles
}

func TestRedFlagsCleanBuilding(t *testing.T) {
	assert.Empty(t, redFlags(scoreInputs{}, 0))
}

func TestRedFlagsClassC(t *testing.T) {
	flags := redFlags(scoreInputs{hpd: hpdViolations{classC: 3}}, 0)

	require.Len(t, flags, 1)
	assert.Equal(t, "critical", flags[0].Severity)
	assert.Equal(t, "3 Class C Violations", flags[0].Title)
}

func TestRedFlagsClassCSingular(t *testing.T) {
	flags := redFlags(scoreInputs{hpd: hpdViolations{classC: 1}}, 0)

	require.Len(t, flags, 1)
	assert.Equal(t, "1 Class C Violation", flags[0].Title)
}

func TestRedFlagsHeatThreshold(t *testing.T) {
	below := redFlags(scoreInputs{hpdComp: hpdComplaints{heat: 4}}, 0)
	at := redFlags(scoreInputs{hpdComp: hpdComplaints{heat: 5}}, 0)
	above := redFlags(scoreInputs{hpdComp: hpdComplaints{heat: 6}}, 0)

	assert.Empty(t, below)
	require.Len(t, at, 1)
	assert.Equal(t, "5 Heat Complaints", at[0].Title)
	require.Len(t, above, 1)
	assert.Equal(t, "6 Heat Complaints", above[0].Title)
	assert.Equal(t, "critical", above[0].Severity)
}

func TestRedFlagsOpenLitigationPenalties(t *testing.T) {
	flags := redFlags(scoreInputs{lit: litigations{open: 2, totalPenalties: 1500000}}, 0)

	require.Len(t, flags, 1)
	assert.Equal(t, "2 Open Legal Cases", flags[0].Title)
	assert.Contains(t, flags[0].Description, "$1.5M")
}

func TestRedFlagsProgramFlags(t *testing.T) {
	flags := redFlags(scoreInputs{programs: model.Programs{
		AEP:              true,
		SpeculationWatch: true,
		VacateOrder:      true,
		CONH:             true,
	}}, 0)

	titles := flagTitles(flags)
	assert.Equal(t, []string{
		"Alternative Enforcement Program",
		"Vacate Order",
		"Speculation Watch List",
		"CONH Required",
	}, titles)
	assert.Equal(t, "info", flags[len(flags)-1].Severity)
}

func TestRedFlagsWarningThresholds(t *testing.T) {
	flags := redFlags(scoreInputs{
		hpd:          hpdViolations{open: 15},
		evictions3Y:  5,
		totalCharges: 10001,
		rodentFailed: 3,
	}, 6)

	titles := flagTitles(flags)
	assert.Equal(t, []string{
		"5 Evictions in 3 Years",
		"15 Open HPD Violations",
		"$10K HPD Charges",
		"6 RS Units Lost",
		"3 Failed Rodent Inspections",
	}, titles)
	for _, f := range flags {
		assert.Equal(t, "warning", f.Severity)
	}
}

func TestRedFlagsRSLostUnitsThreshold(t *testing.T) {
	assert.Empty(t, redFlags(scoreInputs{}, 5))
	assert.Len(t, redFlags(scoreInputs{}, 6), 1)
}

func TestRedFlagsDisplayCap(t *testing.T) {
	flags := redFlags(scoreInputs{
		hpd:          hpdViolations{open: 20, classC: 4},
		hpdComp:      hpdComplaints{heat: 8},
		lit:          litigations{open: 3},
		totalCharges: 20000,
		evictions3Y:  6,
		rodentFailed: 4,
		bedbugs:      3,
		programs: model.Programs{
			AEP:              true,
			SpeculationWatch: true,
			VacateOrder:      true,
			CONH:             true,
		},
	}, 10)

	assert.Len(t, flags, maxRedFlags)
}
