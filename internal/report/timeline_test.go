package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhousing/bldgreport/internal/model"
)

func TestBuildTimelineEmpty(t *testing.T) {
	assert.Empty(t, buildTimeline(timelineInputs{}))
}

func TestBuildTimelineSortedDescending(t *testing.T) {
	events := buildTimeline(timelineInputs{
		hpdViol: []model.Violation{{Date: "2022-06-01T00:00:00.000", Class: "C", Description: "no heat"}},
		sales:   []model.Sale{{Date: "2023-08-01T00:00:00.000", Amount: 2000000}},
		evict:   []model.Eviction{{ExecutedDate: "2023-01-15T00:00:00.000", Type: "Residential"}},
	})

	require.Len(t, events, 3)
	assert.Equal(t, "sale", events[0].Type)
	assert.Equal(t, "eviction", events[1].Type)
	assert.Equal(t, "violation", events[2].Type)
	for i := 1; i < len(events); i++ {
		prev, _ := parseDate(events[i-1].Date)
		cur, _ := parseDate(events[i].Date)
		assert.False(t, prev.Before(cur), "timeline must be non-increasing by date")
	}
}

func TestBuildTimelineDropsUnparseableDates(t *testing.T) {
	events := buildTimeline(timelineInputs{
		hpdViol: []model.Violation{
			{Date: "", Class: "A"},
			{Date: "junk", Class: "A"},
			{Date: "2023-01-01", Class: "A", Description: "paint peeling"},
		},
	})

	require.Len(t, events, 1)
	assert.Equal(t, "2023-01-01", events[0].Date)
}

func TestBuildTimelineSeverities(t *testing.T) {
	events := buildTimeline(timelineInputs{
		hpdViol: []model.Violation{
			{Date: "2023-05-01", Class: "C", Description: "x", Status: "Open"},
			{Date: "2023-04-01", Class: "B", Description: "x"},
			{Date: "2023-03-01", Class: "A", Description: "x"},
		},
		hpdComp: []model.Complaint{
			{Date: "2023-02-02", Type: "HEAT/HOT WATER"},
			{Date: "2023-02-01", Type: "PLUMBING"},
		},
		evict: []model.Eviction{{ExecutedDate: "2023-01-01"}},
	})

	require.Len(t, events, 6)
	assert.Equal(t, "high", events[0].Severity)
	assert.Equal(t, "HPD C", events[0].Source)
	assert.Equal(t, "Open", events[0].Status)
	assert.Equal(t, "medium", events[1].Severity)
	assert.Equal(t, "low", events[2].Severity)
	assert.Equal(t, "high", events[3].Severity, "heat complaints read as high severity")
	assert.Equal(t, "HEAT/HOT WATER complaint", events[3].Description)
	assert.Equal(t, "medium", events[4].Severity)
	assert.Equal(t, "high", events[5].Severity)
	assert.Equal(t, "Eviction (Residential)", events[5].Description)
}

func TestBuildTimelineDescriptions(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	events := buildTimeline(timelineInputs{
		hpdViol: []model.Violation{{Date: "2023-06-01", Class: "A", Description: string(long)}},
		sr311:   []model.Complaint{{Date: "2023-05-01", Type: "HEAT/HOT WATER", Descriptor: "APARTMENT ONLY"}},
		sales:   []model.Sale{{Date: "2023-04-01", Amount: 1500000}},
		lit:     []model.Litigation{{CaseOpenDate: "2023-03-01", CaseType: "Tenant Action", Penalty: 5000}},
		permits: []model.Permit{{FilingDate: "2023-02-01", JobType: "A1", JobTypeDesc: "Major Alteration", EstimatedCost: 90000}},
	})

	require.Len(t, events, 5)
	assert.Len(t, events[0].Description, timelineDescChars)
	assert.Equal(t, "HEAT/HOT WATER: APARTMENT ONLY", events[1].Description)
	assert.Equal(t, "Property sold for $1.5M", events[2].Description)
	assert.Equal(t, "Legal: Tenant Action - $5K", events[3].Description)
	assert.Equal(t, "Major Alteration - $90K", events[4].Description)
}

func TestBuildTimelinePerSourceAndTotalCaps(t *testing.T) {
	var hpd []model.Violation
	for i := 0; i < 60; i++ {
		hpd = append(hpd, model.Violation{Date: fmt.Sprintf("2023-01-%02d", i%28+1), Class: "A"})
	}
	var comps []model.Complaint
	for i := 0; i < 60; i++ {
		comps = append(comps, model.Complaint{Date: fmt.Sprintf("2023-02-%02d", i%28+1), Type: "PLUMBING"})
	}

	events := buildTimeline(timelineInputs{hpdViol: hpd, hpdComp: comps})

	// 40 violations + 25 complaints, under the overall cap.
	assert.Len(t, events, timelineHPDViol+timelineHPDComp)

	var sr []model.Complaint
	for i := 0; i < 60; i++ {
		sr = append(sr, model.Complaint{Date: fmt.Sprintf("2023-03-%02d", i%28+1), Type: "NOISE"})
	}
	var dob []model.Violation
	for i := 0; i < 60; i++ {
		dob = append(dob, model.Violation{Date: fmt.Sprintf("2023-04-%02d", i%28+1)})
	}
	var evict []model.Eviction
	for i := 0; i < 20; i++ {
		evict = append(evict, model.Eviction{ExecutedDate: fmt.Sprintf("2023-05-%02d", i%28+1)})
	}

	full := buildTimeline(timelineInputs{
		hpdViol: hpd,
		dobViol: dob,
		hpdComp: comps,
		sr311:   sr,
		evict:   evict,
	})

	assert.Len(t, full, maxTimeline)
}
