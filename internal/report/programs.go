package report

import (
	"github.com/openhousing/bldgreport/internal/ingest"
	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

// buildPrograms maps enforcement-program membership onto boolean flags.
// Membership is presence-based: one or more rows in the source dataset
// means the building is enrolled.
func buildPrograms(snap *ingest.Snapshot) model.Programs {
	p := model.Programs{
		AEP:              len(snap.HPDAEP) > 0,
		CONH:             len(snap.HPDCONH) > 0,
		SpeculationWatch: len(snap.SpeculationWatch) > 0,
		Subsidized:       len(snap.SubsidizedHousing) > 0,
		NYCHA:            len(snap.NYCHA) > 0,
		VacateOrder:      len(snap.HPDVacateOrders) > 0 || len(snap.DOBVacateOrders) > 0,
	}
	p.SubsidyPrograms = subsidyProgramNames(snap.SubsidizedHousing)
	return p
}

func subsidyProgramNames(records []socrata.Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		name := firstOf(r.Str("program_name"), r.Str("programname"))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
