package report

import "github.com/openhousing/bldgreport/internal/model"

// riskLevel maps a category score to a risk level. Pure threshold
// mapping, no hysteresis.
func riskLevel(score int) string {
	switch {
	case score < 40:
		return "CRITICAL"
	case score < 60:
		return "HIGH"
	case score < 80:
		return "MODERATE"
	default:
		return "LOW"
	}
}

func riskAssessment(scores []model.CategoryScore) []model.RiskAssessment {
	out := make([]model.RiskAssessment, 0, len(scores))
	for _, c := range scores {
		out = append(out, model.RiskAssessment{
			Category: c.Name,
			Score:    c.Score,
			Detail:   c.Detail,
			Level:    riskLevel(c.Score),
		})
	}
	return out
}
