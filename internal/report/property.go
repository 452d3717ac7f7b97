package report

import (
	"strings"
	"time"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/internal/registry"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const (
	recentSales      = 25
	recentPermits    = 25
	rentStabMinUnits = 6
	rentStabMaxYear  = 1974
)

// buildProfile assembles the passthrough building profile from the
// tax-lot record plus the rent-stabilization, subsidy, and
// public-housing lookups. Returns nil when the parcel has no tax-lot
// record at all.
func buildProfile(key model.ParcelKey, pluto, rentStab, subsidy, nycha []socrata.Record) *model.BuildingProfile {
	if len(pluto) == 0 {
		return nil
	}
	p := pluto[0]

	unitsRes := p.Int("unitsres")
	unitsTotal := p.Int("unitstotal")
	if unitsTotal == 0 {
		unitsTotal = unitsRes
	}

	profile := &model.BuildingProfile{
		BBL:               key.Padded,
		Address:           firstOf(p.Str("address"), "Unknown"),
		Borough:           registry.BoroughName(p.Str("borough")),
		Neighborhood:      registry.Neighborhood(p.Str("zipcode")),
		Zipcode:           p.Str("zipcode"),
		YearBuilt:         p.Int("yearbuilt"),
		UnitsRes:          unitsRes,
		UnitsTotal:        unitsTotal,
		Floors:            p.Int("numfloors"),
		BuildingClass:     p.Str("bldgclass"),
		BuildingClassDesc: registry.BuildingClass(p.Str("bldgclass")),
		OwnerName:         firstOf(p.Str("ownername"), "Unknown"),
		OwnerType:         p.Str("ownertype"),
		Latitude:          p.Float("latitude"),
		Longitude:         p.Float("longitude"),
		LotArea:           p.Int("lotarea"),
		BuildingArea:      p.Int("bldgarea"),
		ZoningDistrict:    p.Str("zonedist1"),
		AssessedValue:     p.Int("assesstot"),
		YearAltered1:      p.Int("yearalter1"),
		YearAltered2:      p.Int("yearalter2"),
		Landmark:          p.Str("landmark"),
		HistoricDistrict:  p.Str("histdist"),
		NYCHA:             len(nycha) > 0 || p.Str("ownertype") == "P",
	}

	if len(nycha) > 0 {
		profile.NYCHADevelopment = nycha[0].Str("development")
	}

	// A building is treated as rent stabilized when it appears on the
	// stabilization roll, or heuristically when it is a pre-1974
	// multiple dwelling of six or more units.
	profile.RentStabilized = len(rentStab) > 0 ||
		(unitsRes >= rentStabMinUnits && p.Int("yearbuilt") > 0 && p.Int("yearbuilt") < rentStabMaxYear)
	if len(rentStab) > 0 {
		rs := rentStab[0]
		profile.RentStabUnits = int(firstNonZero(rs.Float("uc2023"), rs.Float("uc2022"), rs.Float("uc2021")))
		if rs.Float("uc2007") > 0 && rs.Float("uc2023") > 0 {
			profile.RentStabLostUnits = int(rs.Float("uc2007") - rs.Float("uc2023"))
		}
	}

	profile.Subsidized = len(subsidy) > 0
	for _, s := range subsidy {
		if name := s.Str("program_name"); name != "" {
			profile.SubsidyPrograms = append(profile.SubsidyPrograms, name)
		}
	}

	return profile
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// normalizeSales keeps arm's-length sales (price above zero) capped to
// the recent slice. The recorded-document total from the city register
// rides along on the summary.
func normalizeSales(records, acrisLegals []socrata.Record) model.SalesSummary {
	s := model.SalesSummary{Documents: len(acrisLegals)}

	for _, r := range records {
		if r.Float("sale_price") <= 0 {
			continue
		}
		date := r.Str("sale_date")
		amount := r.Float("sale_price")
		s.Recent = append(s.Recent, model.Sale{
			ID:     idOr(r.Str("ease_ment"), "SALE", date, ""),
			Date:   date,
			Amount: amount,
		})
		if len(s.Recent) == recentSales {
			break
		}
	}
	s.Total = len(s.Recent)
	if len(s.Recent) > 0 {
		s.LastSaleDate = s.Recent[0].Date
		s.LastSaleAmount = s.Recent[0].Amount
	}

	return s
}

// normalizePermits builds the construction-activity summary from job
// filings, with the issued-permit total from the companion dataset.
func normalizePermits(jobFilings, permitsIssued []socrata.Record, y3 time.Time) model.PermitSummary {
	s := model.PermitSummary{
		Total:  len(jobFilings),
		Issued: len(permitsIssued),
	}

	for _, r := range jobFilings {
		jobType := r.Str("job_type")
		if jobType == "A1" || jobType == "DM" {
			s.MajorAlterations++
		}
		if t, ok := parseDate(r.Str("filing_date")); ok && !t.Before(y3) {
			s.RecentActivity++
		}
	}

	for i, r := range jobFilings {
		if i >= recentPermits {
			break
		}
		jobType := r.Str("job_type")
		applicant := strings.TrimSpace(strings.Join([]string{
			r.Str("applicant_s_first_name"), r.Str("applicant_s_last_name"),
		}, " "))
		s.Recent = append(s.Recent, model.Permit{
			JobNumber:     firstOf(r.Str("job__"), r.Str("job_number")),
			JobType:       jobType,
			JobTypeDesc:   registry.JobType(jobType),
			FilingDate:    firstOf(r.Str("filing_date"), r.Str("pre_filing_date")),
			JobStatus:     r.Str("job_status"),
			JobStatusDesc: r.Str("job_status_descrp"),
			WorkType:      r.Str("work_type"),
			EstimatedCost: r.Float("initial_cost"),
			Applicant:     applicant,
		})
	}

	return s
}
