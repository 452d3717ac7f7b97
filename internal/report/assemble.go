// Package report turns a raw ingest snapshot into the assembled
// habitability report: normalized summaries, composite and category
// scores, red flags, timeline, and trend series. Everything here is a
// pure function of (snapshot, now) so identical inputs always produce
// byte-identical reports.
package report

import (
	"time"

	"github.com/openhousing/bldgreport/internal/ingest"
	"github.com/openhousing/bldgreport/internal/model"
)

const disclaimer = "Data from 30+ NYC Open Data sources. Scores are estimates. Always verify independently and consult professionals."

// Build assembles the full report for one parcel. now anchors every
// trailing window (1/3 year cutoffs, 36-month trend, 11-year stats).
func Build(snap *ingest.Snapshot, now time.Time) *model.Report {
	y1 := windowAnchor(now, 1)
	y3 := windowAnchor(now, 3)

	hpd := normalizeHPDViolations(snap.HPDViolations)
	dob := normalizeDOBViolations(snap.DOBViolations)
	ecb := normalizeECBViolations(snap.ECBViolations)
	hpdComp := normalizeHPDComplaints(snap.HPDComplaints, y1)
	dobComp := normalizeDOBComplaints(snap.DOBComplaints, y1)
	sr := normalize311(snap.ServiceRequests)
	lit := normalizeLitigations(snap.HPDLitigations)
	charges := normalizeCharges(snap.HPDCharges)
	evict := normalizeEvictions(snap.Evictions, y3)
	sales := normalizeSales(snap.DOFSales, snap.ACRISLegals)
	permits := normalizePermits(snap.DOBJobFilings, snap.DOBPermitsIssued, y3)
	rodents := normalizeRodents(snap.RodentInspections)
	bedbugs := normalizeBedbugs(snap.BedbugReports)
	programs := buildPrograms(snap)
	building := buildProfile(snap.Key, snap.Pluto, snap.RentStabilized, snap.SubsidizedHousing, snap.NYCHA)

	in := scoreInputs{
		hpd:          hpd,
		dob:          dob,
		ecb:          ecb,
		hpdComp:      hpdComp,
		lit:          lit,
		totalCharges: charges.TotalAmount,
		evictions3Y:  evict.last3,
		rodentFailed: rodents.Failed,
		bedbugs:      bedbugs.Reports,
		programs:     programs,
	}

	fallbackOwner := ""
	rsLostUnits := 0
	if building != nil {
		fallbackOwner = building.OwnerName
		rsLostUnits = building.RentStabLostUnits
	}

	cats := categoryScores(in, len(snap.DOBSafety))

	return &model.Report{
		BBL:            snap.Key.Padded,
		Building:       building,
		Score:          computeScore(in),
		CategoryScores: cats,
		Violations: model.ViolationsSummary{
			HPD: model.HPDViolationStats{
				Total:      hpd.total,
				Open:       hpd.open,
				ClassA:     hpd.classA,
				ClassB:     hpd.classB,
				ClassC:     hpd.classC,
				ByYear:     hpd.byYear,
				ByCategory: sortedCategoryCounts(hpd.byCategory),
			},
			DOB: model.DOBViolationStats{
				Total:  dob.total,
				Open:   dob.open,
				ByYear: dob.byYear,
			},
			ECB: model.ECBViolationStats{
				Total:         ecb.total,
				Open:          ecb.open,
				PenaltiesOwed: ecb.penalties,
			},
			Safety: model.SafetyStats{Total: len(snap.DOBSafety)},
			Recent: combineRecentViolations(hpd.recent, dob.recent),
		},
		Complaints: model.ComplaintsSummary{
			HPD: model.HPDComplaintStats{
				Total:        hpdComp.total,
				RecentYear:   hpdComp.recentYear,
				HeatHotWater: hpdComp.heat,
				ByYear:       hpdComp.byYear,
			},
			DOB: model.DOBComplaintStats{
				Total:      dobComp.total,
				RecentYear: dobComp.recentYear,
			},
			SR311:      model.SR311Stats{Total: sr.total, ByType: sr.byType},
			Recent:     combineRecentComplaints(hpdComp.recent, dobComp.recent, sr.recent),
			ByCategory: categoryShares(hpdComp.byCategory),
		},
		Litigations: model.LitigationSummary{
			Total:          lit.total,
			Open:           lit.open,
			TotalPenalties: lit.totalPenalties,
			ByType:         lit.byType,
			Recent:         lit.recent,
		},
		Charges: charges,
		Evictions: model.EvictionSummary{
			Total:      evict.total,
			Last3Years: evict.last3,
			ByYear:     evict.byYear,
			Recent:     evict.recent,
		},
		Sales:          sales,
		Permits:        permits,
		Rodents:        rodents,
		Bedbugs:        bedbugs,
		Programs:       programs,
		Landlord:       resolveLandlord(snap.Key, snap.HPDRegistrations, snap.HPDContacts, snap.Portfolio, fallbackOwner),
		RiskAssessment: riskAssessment(cats),
		RedFlags:       redFlags(in, rsLostUnits),
		Timeline: buildTimeline(timelineInputs{
			hpdViol: hpd.recent,
			dobViol: dob.recent,
			hpdComp: hpdComp.recent,
			dobComp: dobComp.recent,
			sr311:   sr.recent,
			sales:   sales.Recent,
			evict:   evict.recent,
			lit:     lit.recent,
			permits: permits.Recent,
		}),
		MonthlyTrend: monthlyTrend(now, hpd.dates, dob.dates, hpdComp.dates),
		YearlyStats:  yearlyStats(now, hpd.byYear, dob.byYear, hpdComp.byYear, evict.byYear),
		Sources:      snap.Health,
		LastUpdated:  now.UTC().Format(time.RFC3339),
		Disclaimer:   disclaimer,
	}
}

// windowAnchor is the first of the current month, years back. The
// ingest queries use the same cutoff so the trailing-window counts
// line up with what was fetched.
func windowAnchor(now time.Time, yearsBack int) time.Time {
	return time.Date(now.Year()-yearsBack, now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
