package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", CategoryOther},
		{"no match", "miscellaneous condition noted", CategoryOther},
		{"heat", "NO HEAT IN APARTMENT", CategoryHeat},
		{"hot water", "inadequate hot water supply", CategoryHeat},
		{"boiler", "boiler out of service", CategoryHeat},
		{"pests", "roach infestation in kitchen", CategoryPests},
		{"lead", "lead based paint peeling", CategoryLeadPaint},
		{"mold", "mildew on bathroom wall", CategoryMold},
		{"fire", "smoke detector missing", CategoryFireSafety},
		{"electrical", "exposed wiring in hallway", CategoryElectrical},
		{"plumbing via water", "water damage under sink", CategoryPlumbing},
		{"security", "broken lock on entrance", CategorySecurity},
		{"elevator", "elevator stuck between floors", CategoryElevator},
		{"gas", "gas odor reported", CategoryGas},
		{"structural", "ceiling collapse in bedroom", CategoryStructural},
		{"sanitation", "garbage piling in courtyard", CategorySanitation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Overlapping keywords make group order a correctness property: "heat"
// must beat "mold", "hot water" must beat the Plumbing "water" match.
func TestClassifyOrder(t *testing.T) {
	assert.Equal(t, CategoryHeat, Classify("no heat and mold in the unit"))
	assert.Equal(t, CategoryHeat, Classify("hot water leak from boiler"))
	assert.Equal(t, CategoryPlumbing, Classify("water leak in ceiling"))
	assert.Equal(t, CategoryPests, Classify("rats chewed the door frame"))
	assert.Equal(t, CategoryLeadPaint, Classify("paint peeling near window"))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryHeat, Classify("NO HEAT"))
	assert.Equal(t, CategoryPests, Classify("BedBug Report"))
}
