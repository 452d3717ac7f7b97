package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

func TestNormalizeHPDViolationsEmpty(t *testing.T) {
	v := normalizeHPDViolations(nil)

	assert.Zero(t, v.total)
	assert.Zero(t, v.open)
	assert.Empty(t, v.recent)
	assert.Empty(t, v.byYear)
}

func TestNormalizeHPDViolationsOpenSemantics(t *testing.T) {
	records := []socrata.Record{
		// Open by status text.
		{"violationid": "1", "class": "C", "currentstatus": "VIOLATION OPEN", "currentstatusdate": "2023-01-05T00:00:00.000", "inspectiondate": "2023-01-01T00:00:00.000", "novdescription": "no heat"},
		// Open by absent status date.
		{"violationid": "2", "class": "B", "currentstatus": "VIOLATION CLOSED", "inspectiondate": "2022-06-01T00:00:00.000", "novdescription": "roaches in kitchen"},
		// Closed: has status date and no "open" in status.
		{"violationid": "3", "class": "A", "currentstatus": "VIOLATION CLOSED", "currentstatusdate": "2022-02-01T00:00:00.000", "inspectiondate": "2022-01-01T00:00:00.000", "novdescription": "peeling paint"},
	}

	v := normalizeHPDViolations(records)

	assert.Equal(t, 3, v.total)
	assert.Equal(t, 2, v.open)
	assert.Equal(t, 1, v.classC)
	assert.Equal(t, 1, v.classB)
	assert.Equal(t, 0, v.classA, "class counts only cover open violations")
}

func TestNormalizeHPDViolationsYearBuckets(t *testing.T) {
	records := []socrata.Record{
		{"class": "C", "inspectiondate": "2023-03-01T00:00:00.000", "currentstatusdate": "x", "currentstatus": "closed"},
		{"class": "A", "novissueddate": "2023-07-01T00:00:00.000", "currentstatusdate": "x", "currentstatus": "closed"},
		// Pre-2010 years are excluded from buckets but still counted in totals.
		{"class": "B", "inspectiondate": "2009-01-01T00:00:00.000", "currentstatusdate": "x", "currentstatus": "closed"},
		// No date at all: counted, not bucketed.
		{"class": "B", "currentstatusdate": "x", "currentstatus": "closed"},
	}

	v := normalizeHPDViolations(records)

	assert.Equal(t, 4, v.total)
	require.Len(t, v.byYear, 1)
	assert.Equal(t, model.YearClassCounts{Total: 2, ClassA: 1, ClassC: 1}, v.byYear["2023"])
}

func TestNormalizeHPDViolationsRecentDefaults(t *testing.T) {
	v := normalizeHPDViolations([]socrata.Record{{"inspectiondate": "2023-01-01T00:00:00.000", "currentstatus": "OPEN", "apartment": "4B"}})

	require.Len(t, v.recent, 1)
	r := v.recent[0]
	assert.Equal(t, "No description", r.Description)
	assert.Equal(t, "A", r.Class)
	assert.Equal(t, "Open", r.Status)
	assert.Equal(t, "4B", r.Unit)
	assert.Equal(t, CategoryOther, r.Category)
	assert.NotEmpty(t, r.ID, "records without a natural id get a derived one")
}

func TestNormalizeHPDViolationsStableIDs(t *testing.T) {
	records := []socrata.Record{{"inspectiondate": "2023-01-01T00:00:00.000", "novdescription": "no heat", "currentstatus": "OPEN"}}

	first := normalizeHPDViolations(records)
	second := normalizeHPDViolations(records)

	assert.Equal(t, first.recent[0].ID, second.recent[0].ID)
}

func TestNormalizeHPDViolationsRecentCap(t *testing.T) {
	records := make([]socrata.Record, 60)
	for i := range records {
		records[i] = socrata.Record{"violationid": fmt.Sprintf("%d", i), "inspectiondate": "2023-01-01T00:00:00.000", "currentstatus": "OPEN"}
	}

	v := normalizeHPDViolations(records)

	assert.Equal(t, 60, v.total)
	assert.Len(t, v.recent, recentHPDViolations)
}

func TestNormalizeDOBViolations(t *testing.T) {
	records := []socrata.Record{
		{"isn_dob_bis_extract": "10", "issue_date": "2023-05-01", "violation_type": "LL6291", "description": "boiler defect"},
		{"isn_dob_bis_extract": "11", "issue_date": "2022-01-01", "disposition_date": "2022-06-01", "violation_type": "AEUHAZ1", "violation_type_description": "failure to certify"},
		// No issue date: never open.
		{"isn_dob_bis_extract": "12"},
	}

	v := normalizeDOBViolations(records)

	assert.Equal(t, 3, v.total)
	assert.Equal(t, 1, v.open)
	assert.Equal(t, map[string]int{"2023": 1, "2022": 1}, v.byYear)
	require.Len(t, v.recent, 3)
	assert.Equal(t, "Open", v.recent[0].Status)
	assert.Equal(t, CategoryHeat, v.recent[0].Category)
	assert.Equal(t, "Closed", v.recent[1].Status)
	assert.Equal(t, "failure to certify", v.recent[1].Description)
}

func TestNormalizeECBViolations(t *testing.T) {
	records := []socrata.Record{
		{"ecb_violation_status": "ACTIVE", "penalty_balance_due": "1250.50"},
		{"ecb_violation_status": "RESOLVE", "penalty_balance_due": "0"},
		{"ecb_violation_status": "DISMISSED"},
	}

	v := normalizeECBViolations(records)

	assert.Equal(t, 3, v.total)
	assert.Equal(t, 1, v.open)
	assert.InDelta(t, 1250.50, v.penalties, 0.001)
}

func TestCombineRecentViolations(t *testing.T) {
	hpd := []model.Violation{
		{Source: "HPD", Date: "2023-01-01T00:00:00.000"},
		{Source: "HPD", Date: "not a date"},
	}
	dob := []model.Violation{
		{Source: "DOB", Date: "2023-06-01"},
	}

	combined := combineRecentViolations(hpd, dob)

	require.Len(t, combined, 3)
	assert.Equal(t, "DOB", combined[0].Source)
	assert.Equal(t, "2023-01-01T00:00:00.000", combined[1].Date)
	assert.Equal(t, "not a date", combined[2].Date, "unparseable dates sort last")
}

func TestCombineRecentViolationsCap(t *testing.T) {
	var hpd, dob []model.Violation
	for i := 0; i < 40; i++ {
		hpd = append(hpd, model.Violation{Date: "2023-01-01"})
		dob = append(dob, model.Violation{Date: "2023-02-01"})
	}

	assert.Len(t, combineRecentViolations(hpd, dob), combinedRecentCap)
}

func TestSortedCategoryCounts(t *testing.T) {
	counts := sortedCategoryCounts(map[string]int{
		CategoryPests: 2,
		CategoryHeat:  5,
		CategoryMold:  2,
	})

	assert.Equal(t, []model.CategoryCount{
		{Category: CategoryHeat, Count: 5},
		{Category: CategoryMold, Count: 2},
		{Category: CategoryPests, Count: 2},
	}, counts)
}
