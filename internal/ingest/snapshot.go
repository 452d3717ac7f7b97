// Package ingest fetches all upstream dataset slices for one parcel
// concurrently and collects them into an immutable Snapshot for the
// report engine. Every source is fetched through the same
// fetch-with-fallback wrapper: a failed or timed-out source degrades
// to an empty slice and a health flag, never to an error.
package ingest

import (
	"sync"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

// Snapshot holds the raw record arrays for one parcel, one slot per
// source. Each fetch goroutine writes only its own slot; the mutex
// guards the shared health map.
type Snapshot struct {
	Key model.ParcelKey

	Pluto             []socrata.Record
	HPDViolations     []socrata.Record
	HPDComplaints     []socrata.Record
	HPDRegistrations  []socrata.Record
	HPDContacts       []socrata.Record
	HPDLitigations    []socrata.Record
	HPDCharges        []socrata.Record
	HPDVacateOrders   []socrata.Record
	HPDAEP            []socrata.Record
	HPDCONH           []socrata.Record
	DOBViolations     []socrata.Record
	DOBComplaints     []socrata.Record
	DOBJobFilings     []socrata.Record
	DOBPermitsIssued  []socrata.Record
	DOBSafety         []socrata.Record
	ECBViolations     []socrata.Record
	DOBVacateOrders   []socrata.Record
	ACRISLegals       []socrata.Record
	DOFSales          []socrata.Record
	Evictions         []socrata.Record
	RodentInspections []socrata.Record
	BedbugReports     []socrata.Record
	SpeculationWatch  []socrata.Record
	RentStabilized    []socrata.Record
	SubsidizedHousing []socrata.Record
	NYCHA             []socrata.Record
	ServiceRequests   []socrata.Record

	// Portfolio is filled by the second fetch stage when a registration
	// id was found; it shares the registration with the current parcel.
	Portfolio []socrata.Record

	mu     sync.Mutex
	Health map[string]model.SourceHealth
}

func (s *Snapshot) record(name string, records []socrata.Record, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Health[name] = model.SourceHealth{Records: len(records), OK: ok}
}
