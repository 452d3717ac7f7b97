package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/internal/registry"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

// Per-source fetch limits. Values bound worst-case payloads; the
// engine applies its own recent-slice caps downstream.
const (
	limitPluto        = 1
	limitHPDViol      = 1500
	limitHPDComplaint = 800
	limitContacts     = 30
	limitLitigations  = 200
	limitCharges      = 200
	limitVacates      = 50
	limitPrograms     = 10
	limitDOBViol      = 800
	limitDOBComplaint = 400
	limitJobFilings   = 300
	limitPermits      = 200
	limitSafety       = 150
	limitECB          = 300
	limitDOBVacates   = 30
	limitACRIS        = 100
	limitSales        = 50
	limitEvictions    = 150
	limitRodents      = 80
	limitBedbugs      = 50
	limitSpecWatch    = 5
	limitRentStab     = 1
	limitSubsidy      = 5
	limitNYCHA        = 3
	limit311          = 300
	limitPortfolio    = 150
)

// Fetcher performs the two-stage concurrent ingest for one parcel.
type Fetcher struct {
	client socrata.Client
}

// New creates a Fetcher backed by the given SODA client.
func New(client socrata.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves all primary sources concurrently, then the landlord
// portfolio as a dependent second stage. The returned Snapshot always
// has every slot populated (possibly empty); per-source outcomes are
// recorded in Snapshot.Health. The now anchor drives the trailing
// date-window filters so the whole ingest is reproducible.
func (f *Fetcher) Fetch(ctx context.Context, key model.ParcelKey, now time.Time) *Snapshot {
	snap := &Snapshot{
		Key:    key,
		Health: make(map[string]model.SourceHealth),
	}

	y3 := windowStart(now, 3)
	y5 := windowStart(now, 5)

	bbl := key.Padded
	boro, block, lot := key.Borough(), key.Block(), key.Lot()
	bblEq := map[string]string{"bbl": bbl}
	blockLot := fmt.Sprintf("boro='%s' AND block='%s' AND lot='%s'", boro, block, lot)
	blockLotLong := fmt.Sprintf("borough='%s' AND block='%s' AND lot='%s'", boro, block, lot)

	var g errgroup.Group
	fetch := func(name, dataset string, q socrata.Query, dst *[]socrata.Record) {
		g.Go(func() error {
			records, err := f.client.Get(ctx, dataset, q)
			if err != nil {
				zap.L().Warn("ingest: source fetch failed",
					zap.String("source", name),
					zap.String("bbl", bbl),
					zap.Error(err),
				)
				snap.record(name, nil, false)
				return nil
			}
			*dst = records
			snap.record(name, records, true)
			return nil
		})
	}

	fetch("pluto", registry.PLUTO, socrata.Query{Params: bblEq, Limit: limitPluto}, &snap.Pluto)
	fetch("hpd_violations", registry.HPDViolations, socrata.Query{Params: bblEq, Limit: limitHPDViol, Order: "inspectiondate DESC"}, &snap.HPDViolations)
	fetch("hpd_complaints", registry.HPDComplaints, socrata.Query{Params: bblEq, Where: fmt.Sprintf("receiveddate>='%s'", y5), Limit: limitHPDComplaint, Order: "receiveddate DESC"}, &snap.HPDComplaints)
	fetch("hpd_registrations", registry.HPDRegistrations, socrata.Query{Params: bblEq, Limit: limitPluto}, &snap.HPDRegistrations)
	// Contacts carry no bbl column; they join through the registration.
	contactsWhere := fmt.Sprintf("registrationid IN (SELECT registrationid FROM %s WHERE bbl='%s')", registry.HPDRegistrations, bbl)
	fetch("hpd_contacts", registry.HPDContacts, socrata.Query{Where: contactsWhere, Limit: limitContacts}, &snap.HPDContacts)
	fetch("hpd_litigations", registry.HPDLitigations, socrata.Query{Params: bblEq, Limit: limitLitigations, Order: "caseopendate DESC"}, &snap.HPDLitigations)
	fetch("hpd_charges", registry.HPDCharges, socrata.Query{Params: bblEq, Limit: limitCharges}, &snap.HPDCharges)
	fetch("hpd_vacate_orders", registry.HPDVacateOrders, socrata.Query{Params: bblEq, Limit: limitVacates}, &snap.HPDVacateOrders)
	fetch("hpd_aep", registry.HPDAEP, socrata.Query{Params: bblEq, Limit: limitPrograms}, &snap.HPDAEP)
	fetch("hpd_conh", registry.HPDCONH, socrata.Query{Params: bblEq, Limit: limitPrograms}, &snap.HPDCONH)
	fetch("dob_violations", registry.DOBViolations, socrata.Query{Where: blockLot, Limit: limitDOBViol, Order: "issue_date DESC"}, &snap.DOBViolations)
	fetch("dob_complaints", registry.DOBComplaints, socrata.Query{Where: blockLot, Limit: limitDOBComplaint, Order: "date_entered DESC"}, &snap.DOBComplaints)
	fetch("dob_job_filings", registry.DOBJobFilings, socrata.Query{Where: blockLotLong, Limit: limitJobFilings, Order: "filing_date DESC"}, &snap.DOBJobFilings)
	fetch("dob_permits_issued", registry.DOBPermitsIssued, socrata.Query{Where: blockLotLong, Limit: limitPermits}, &snap.DOBPermitsIssued)
	fetch("dob_safety", registry.DOBSafety, socrata.Query{Where: blockLot, Limit: limitSafety}, &snap.DOBSafety)
	fetch("ecb_violations", registry.ECBViolations, socrata.Query{Where: blockLot, Limit: limitECB}, &snap.ECBViolations)
	fetch("dob_vacate_orders", registry.DOBVacateOrders, socrata.Query{Where: blockLotLong, Limit: limitDOBVacates}, &snap.DOBVacateOrders)
	fetch("acris_legals", registry.ACRISLegals, socrata.Query{Where: fmt.Sprintf("borough='%s' AND block=%s AND lot=%s", boro, block, lot), Limit: limitACRIS, Order: "good_through_date DESC"}, &snap.ACRISLegals)
	fetch("dof_sales", registry.DOFSales, socrata.Query{Where: fmt.Sprintf("borough=%s AND block=%s AND lot=%s", boro, block, lot), Limit: limitSales, Order: "sale_date DESC"}, &snap.DOFSales)
	fetch("evictions", registry.Evictions, socrata.Query{Params: bblEq, Where: fmt.Sprintf("executed_date>='%s'", y5), Limit: limitEvictions, Order: "executed_date DESC"}, &snap.Evictions)
	fetch("rodent_inspections", registry.RodentInspections, socrata.Query{Params: bblEq, Limit: limitRodents, Order: "inspection_date DESC"}, &snap.RodentInspections)
	fetch("bedbug_reports", registry.BedbugReports, socrata.Query{Where: fmt.Sprintf("building_id='%s'", bbl), Limit: limitBedbugs}, &snap.BedbugReports)
	fetch("speculation_watch", registry.SpeculationWatch, socrata.Query{Params: bblEq, Limit: limitSpecWatch}, &snap.SpeculationWatch)
	fetch("rent_stabilized", registry.RentStabilized, socrata.Query{Where: fmt.Sprintf("ucbbl='%s'", bbl), Limit: limitRentStab}, &snap.RentStabilized)
	fetch("subsidized_housing", registry.SubsidizedHousing, socrata.Query{Where: fmt.Sprintf("bbl='%s'", bbl), Limit: limitSubsidy}, &snap.SubsidizedHousing)
	fetch("nycha", registry.NYCHA, socrata.Query{Where: fmt.Sprintf("bbl='%s'", bbl), Limit: limitNYCHA}, &snap.NYCHA)
	fetch("sr311", registry.ServiceRequests, socrata.Query{Where: fmt.Sprintf("bbl='%s' AND created_date>='%s'", bbl, y3), Limit: limit311, Order: "created_date DESC"}, &snap.ServiceRequests)

	// Workers never return errors; Wait is a pure barrier.
	_ = g.Wait()

	f.fetchPortfolio(ctx, snap)

	return snap
}

// fetchPortfolio runs the dependent second stage: all buildings under
// the registration id found in stage one. Fail-soft like every other
// source; on failure the landlord portfolio fields keep their zero
// defaults.
func (f *Fetcher) fetchPortfolio(ctx context.Context, snap *Snapshot) {
	if len(snap.HPDRegistrations) == 0 {
		return
	}
	regID := snap.HPDRegistrations[0].Str("registrationid")
	if regID == "" {
		return
	}

	records, err := f.client.Get(ctx, registry.HPDRegistrations, socrata.Query{
		Params: map[string]string{"registrationid": regID},
		Select: "bbl,housenumber,streetname,zip,borough",
		Limit:  limitPortfolio,
	})
	if err != nil {
		zap.L().Warn("ingest: portfolio fetch failed",
			zap.String("bbl", snap.Key.Padded),
			zap.String("registration_id", regID),
			zap.Error(err),
		)
		snap.record("portfolio", nil, false)
		return
	}
	snap.Portfolio = records
	snap.record("portfolio", records, true)
}

// windowStart returns the first of the current month, years back, as a
// SODA date literal.
func windowStart(now time.Time, yearsBack int) string {
	return time.Date(now.Year()-yearsBack, now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
