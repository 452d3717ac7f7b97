package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/openhousing/bldgreport/internal/model"
)

const (
	maxTimeline         = 100
	timelineHPDViol     = 40
	timelineDOBViol     = 20
	timelineHPDComp     = 25
	timelineDOBComp     = 15
	timeline311         = 15
	timelineSales       = 10
	timelineLitigations = 10
	timelinePermits     = 10
	timelineDescChars   = 120
	timeline311Chars    = 100
)

// timelineInputs carries the bounded recent slices feeding the merged
// history view.
type timelineInputs struct {
	hpdViol []model.Violation
	dobViol []model.Violation
	hpdComp []model.Complaint
	dobComp []model.Complaint
	sr311   []model.Complaint
	sales   []model.Sale
	evict   []model.Eviction
	lit     []model.Litigation
	permits []model.Permit
}

type datedEvent struct {
	at    time.Time
	event model.TimelineEvent
}

// buildTimeline merges every source's recent slice into one sequence
// sorted descending by date. Entries with unparseable dates are
// dropped, not crashed on. No cross-source dedup: the same real-world
// event may legitimately appear from two sources.
func buildTimeline(in timelineInputs) []model.TimelineEvent {
	var events []datedEvent

	add := func(date string, ev model.TimelineEvent) {
		at, ok := parseDate(date)
		if !ok {
			return
		}
		ev.Date = date
		events = append(events, datedEvent{at: at, event: ev})
	}

	for _, v := range capViolations(in.hpdViol, timelineHPDViol) {
		severity := "low"
		switch v.Class {
		case "C":
			severity = "high"
		case "B":
			severity = "medium"
		}
		add(v.Date, model.TimelineEvent{
			Type:        "violation",
			Source:      "HPD " + v.Class,
			Description: truncate(v.Description, timelineDescChars),
			Severity:    severity,
			Status:      v.Status,
		})
	}
	for _, v := range capViolations(in.dobViol, timelineDOBViol) {
		add(v.Date, model.TimelineEvent{
			Type:        "violation",
			Source:      "DOB",
			Description: truncate(firstOf(v.Description, v.Type), timelineDescChars),
			Severity:    "medium",
			Status:      v.Status,
		})
	}
	for _, c := range capComplaints(in.hpdComp, timelineHPDComp) {
		severity := "medium"
		if strings.Contains(strings.ToLower(c.Type), "heat") {
			severity = "high"
		}
		add(c.Date, model.TimelineEvent{
			Type:        "complaint",
			Source:      "HPD",
			Description: truncate(c.Type+" complaint", timelineDescChars),
			Severity:    severity,
		})
	}
	for _, c := range capComplaints(in.dobComp, timelineDOBComp) {
		add(c.Date, model.TimelineEvent{
			Type:        "complaint",
			Source:      "DOB",
			Description: truncate(c.Type, timelineDescChars),
			Severity:    "medium",
		})
	}
	for _, r := range capComplaints(in.sr311, timeline311) {
		add(r.Date, model.TimelineEvent{
			Type:        "311",
			Source:      "311",
			Description: truncate(fmt.Sprintf("%s: %s", r.Type, r.Descriptor), timeline311Chars),
			Severity:    "low",
		})
	}
	for i, s := range in.sales {
		if i >= timelineSales {
			break
		}
		add(s.Date, model.TimelineEvent{
			Type:        "sale",
			Source:      "ACRIS",
			Description: "Property sold for " + formatMoney(s.Amount),
			Severity:    "medium",
		})
	}
	for _, e := range in.evict {
		kind := firstOf(e.Type, "Residential")
		add(e.ExecutedDate, model.TimelineEvent{
			Type:        "eviction",
			Source:      "Marshal",
			Description: fmt.Sprintf("Eviction (%s)", kind),
			Severity:    "high",
		})
	}
	for i, l := range in.lit {
		if i >= timelineLitigations {
			break
		}
		desc := "Legal: " + l.CaseType
		if l.Penalty > 0 {
			desc += " - " + formatMoney(l.Penalty)
		}
		add(l.CaseOpenDate, model.TimelineEvent{
			Type:        "litigation",
			Source:      "HPD",
			Description: desc,
			Severity:    "high",
		})
	}
	for i, p := range in.permits {
		if i >= timelinePermits {
			break
		}
		desc := firstOf(p.JobTypeDesc, p.JobType)
		if p.EstimatedCost > 0 {
			desc += " - " + formatMoney(p.EstimatedCost)
		}
		add(p.FilingDate, model.TimelineEvent{
			Type:        "permit",
			Source:      "DOB",
			Description: desc,
			Severity:    "low",
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.After(events[j].at)
	})

	n := len(events)
	if n > maxTimeline {
		n = maxTimeline
	}
	out := make([]model.TimelineEvent, 0, n)
	for _, e := range events[:n] {
		out = append(out, e.event)
	}
	return out
}

func capViolations(v []model.Violation, n int) []model.Violation {
	if len(v) > n {
		return v[:n]
	}
	return v
}

func capComplaints(c []model.Complaint, n int) []model.Complaint {
	if len(c) > n {
		return c[:n]
	}
	return c
}
