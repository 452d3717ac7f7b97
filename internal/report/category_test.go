package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhousing/bldgreport/internal/model"
)

func scoreByName(t *testing.T, scores []model.CategoryScore, name string) model.CategoryScore {
	t.Helper()
	for _, s := range scores {
		if s.Name == name {
			return s
		}
	}
	require.Failf(t, "category missing", "no %q in %v", name, scores)
	return model.CategoryScore{}
}

func TestCategoryScoresClean(t *testing.T) {
	scores := categoryScores(scoreInputs{}, 0)

	require.Len(t, scores, 6)
	for _, s := range scores {
		assert.Equal(t, 100, s.Score, s.Name)
	}
}

func TestCategoryScoresHeat(t *testing.T) {
	scores := categoryScores(scoreInputs{hpdComp: hpdComplaints{heat: 6}}, 0)

	heat := scoreByName(t, scores, "Heat Reliability")
	assert.Equal(t, 28, heat.Score)
	assert.Equal(t, "6 heat complaints/yr", heat.Detail)
}

func TestCategoryScoresFloorAtZero(t *testing.T) {
	scores := categoryScores(scoreInputs{hpdComp: hpdComplaints{heat: 20}}, 0)

	assert.Equal(t, 0, scoreByName(t, scores, "Heat Reliability").Score)
}

func TestCategoryScoresPests(t *testing.T) {
	in := scoreInputs{
		hpd:          hpdViolations{byCategory: map[string]int{CategoryPests: 2}},
		rodentFailed: 1,
		bedbugs:      1,
	}
	scores := categoryScores(in, 0)

	pests := scoreByName(t, scores, "Pest Control")
	assert.Equal(t, 59, pests.Score)
	assert.Equal(t, "1 failed inspections, 1 bedbug reports", pests.Detail)
}

func TestCategoryScoresMaintenance(t *testing.T) {
	in := scoreInputs{
		hpd: hpdViolations{open: 5},
		dob: dobViolations{open: 2},
	}
	scores := categoryScores(in, 0)

	maint := scoreByName(t, scores, "Building Maintenance")
	assert.Equal(t, 77, maint.Score)
	assert.Equal(t, "7 open violations", maint.Detail)
}

func TestCategoryScoresSafety(t *testing.T) {
	in := scoreInputs{
		hpd: hpdViolations{
			classC:     2,
			byCategory: map[string]int{CategoryFireSafety: 1, CategoryGas: 1},
		},
	}
	scores := categoryScores(in, 2)

	safety := scoreByName(t, scores, "Safety")
	// 100 - 2*20 - 1*10 - 1*15 - 2*8 = 19
	assert.Equal(t, 19, safety.Score)
	assert.Equal(t, "2 Class C violations", safety.Detail)
}

func TestCategoryScoresLandlord(t *testing.T) {
	in := scoreInputs{
		lit:          litigations{open: 2},
		totalCharges: 12000,
	}
	scores := categoryScores(in, 0)

	landlord := scoreByName(t, scores, "Landlord Responsiveness")
	// 100 - 2*15 - min(12000/1000, 20) = 58
	assert.Equal(t, 58, landlord.Score)
	assert.Equal(t, "2 legal cases, $12K charges", landlord.Detail)
}

func TestCategoryScoresStability(t *testing.T) {
	in := scoreInputs{
		evictions3Y: 3,
		programs:    model.Programs{SpeculationWatch: true},
	}
	scores := categoryScores(in, 0)

	stability := scoreByName(t, scores, "Tenant Stability")
	assert.Equal(t, 49, stability.Score)
	assert.Equal(t, "3 evictions in 3 years", stability.Detail)
}

func TestRiskLevels(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "CRITICAL"},
		{39, "CRITICAL"},
		{40, "HIGH"},
		{59, "HIGH"},
		{60, "MODERATE"},
		{79, "MODERATE"},
		{80, "LOW"},
		{100, "LOW"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevel(tt.score), "score %d", tt.score)
	}
}

func TestRiskAssessmentMirrorsCategories(t *testing.T) {
	scores := categoryScores(scoreInputs{hpdComp: hpdComplaints{heat: 6}}, 0)
	risk := riskAssessment(scores)

	require.Len(t, risk, len(scores))
	for i, r := range risk {
		assert.Equal(t, scores[i].Name, r.Category)
		assert.Equal(t, scores[i].Score, r.Score)
		assert.Equal(t, scores[i].Detail, r.Detail)
		assert.Equal(t, riskLevel(scores[i].Score), r.Level)
	}
	assert.Equal(t, "CRITICAL", riskAssessment([]model.CategoryScore{{Name: "Heat Reliability", Score: 28}})[0].Level)
}
