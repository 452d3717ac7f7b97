package report

import (
	"strconv"
	"time"

	"github.com/openhousing/bldgreport/internal/model"
)

const (
	trendMonths = 36
	statsYears  = 11
)

// monthlyTrend buckets violation and complaint dates into a rolling
// 36-month window ending at the month of now. Empty months are emitted
// as zero so the series stays contiguous for charting.
func monthlyTrend(now time.Time, hpdDates, dobDates, compDates []string) []model.MonthlyBucket {
	hpd := parseDates(hpdDates)
	dob := parseDates(dobDates)
	comp := parseDates(compDates)

	out := make([]model.MonthlyBucket, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		b := model.MonthlyBucket{
			Month:         start.Format("Jan"),
			Year:          start.Year(),
			MonthYear:     start.Format("Jan 06"),
			HPDViolations: countBetween(hpd, start, end),
			DOBViolations: countBetween(dob, start, end),
			Complaints:    countBetween(comp, start, end),
		}
		b.Total = b.HPDViolations + b.DOBViolations + b.Complaints
		out = append(out, b)
	}
	return out
}

// yearlyStats reads the by-year maps for the current year back ten.
// Missing years read as zero.
func yearlyStats(now time.Time, hpdByYear map[string]model.YearClassCounts, dobByYear, compByYear, evictByYear map[string]int) []model.YearlyBucket {
	out := make([]model.YearlyBucket, 0, statsYears)
	for y := now.Year(); y >= now.Year()-(statsYears-1); y-- {
		key := strconv.Itoa(y)
		out = append(out, model.YearlyBucket{
			Year:          y,
			HPDViolations: hpdByYear[key].Total,
			HPDClassC:     hpdByYear[key].ClassC,
			DOBViolations: dobByYear[key],
			Complaints:    compByYear[key],
			Evictions:     evictByYear[key],
		})
	}
	return out
}

func parseDates(dates []string) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if t, ok := parseDate(d); ok {
			out = append(out, t)
		}
	}
	return out
}

func countBetween(dates []time.Time, start, end time.Time) int {
	n := 0
	for _, d := range dates {
		if !d.Before(start) && d.Before(end) {
			n++
		}
	}
	return n
}
