// Package report is the scoring and aggregation engine. Everything in
// it is a pure function of the ingest snapshot and an explicit time
// anchor, so identical inputs produce byte-identical reports.
package report

import "strings"

// Category labels assigned to violation and complaint free text.
const (
	CategoryHeat       = "Heat/Hot Water"
	CategoryPests      = "Pests"
	CategoryLeadPaint  = "Lead Paint"
	CategoryMold       = "Mold"
	CategoryFireSafety = "Fire Safety"
	CategoryElectrical = "Electrical"
	CategoryPlumbing   = "Plumbing"
	CategorySecurity   = "Security"
	CategoryElevator   = "Elevator"
	CategoryGas        = "Gas"
	CategoryStructural = "Structural"
	CategorySanitation = "Sanitation"
	CategoryOther      = "Other"
)

type keywordGroup struct {
	label    string
	keywords []string
}

// categoryTable is an ordered priority list: the first group with any
// matching substring wins. Keywords overlap across groups ("water" is
// in both Heat/Hot Water and Plumbing), so order is load-bearing and
// pinned by tests.
var categoryTable = []keywordGroup{
	{CategoryHeat, []string{"heat", "hot water", "boiler"}},
	{CategoryPests, []string{"roach", "mice", "rat", "pest", "rodent", "bedbug"}},
	{CategoryLeadPaint, []string{"lead", "paint"}},
	{CategoryMold, []string{"mold", "mildew"}},
	{CategoryFireSafety, []string{"fire", "smoke", "detector", "sprinkler"}},
	{CategoryElectrical, []string{"electric", "outlet", "wiring"}},
	{CategoryPlumbing, []string{"plumb", "leak", "water", "toilet", "sink"}},
	{CategorySecurity, []string{"lock", "door", "window", "security"}},
	{CategoryElevator, []string{"elevator"}},
	{CategoryGas, []string{"gas"}},
	{CategoryStructural, []string{"roof", "structural", "wall", "floor", "ceiling"}},
	{CategorySanitation, []string{"garbage", "trash", "sanitary"}},
}

// Classify maps free text to a category label. First match wins; text
// matching no group (including empty text) is Other.
func Classify(text string) string {
	d := strings.ToLower(text)
	for _, group := range categoryTable {
		for _, kw := range group.keywords {
			if strings.Contains(d, kw) {
				return group.label
			}
		}
	}
	return CategoryOther
}
