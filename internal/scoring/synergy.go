package scoring

import (
	"math"
	"strings"
)

// SkillsMatchScore joins individual skills to required skills by name and returns the
// importance-weighted coverage on 0-100. The denominator is the total importance of every
// required skill, matched or not.
func SkillsMatchScore(individual []Skill, required []RequiredSkill) float64 {
	if len(individual) == 0 || len(required) == 0 {
		return 0
	}

	byName := make(map[string][]float64, len(individual))
	for _, s := range individual {
		key := skillKey(s.Name)
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], s.Score)
	}

	var (
		weighted        float64
		totalImportance float64
		matched         bool
	)
	for _, r := range required {
		totalImportance += r.Importance
		scores, ok := byName[skillKey(r.Name)]
		if !ok {
			continue
		}
		matched = true
		for _, score := range scores {
			weighted += math.Min(score, r.RequiredScore) / 100 * r.Importance
		}
	}
	if !matched || totalImportance == 0 {
		return 0
	}
	return weighted / totalImportance * 100
}

func skillKey(name string) string {
	return strings.TrimSpace(name)
}

// TimingFactor rewards tenure: 1 for no experience, otherwise 1 + years/5.
func TimingFactor(yearsExperience float64) float64 {
	if yearsExperience <= 0 {
		return 1
	}
	return 1 + yearsExperience/5
}

// AlignmentFactor normalizes the match score and applies the timing factor.
func AlignmentFactor(skillsMatch, maxPossibleMatch, timingFactor float64) float64 {
	if maxPossibleMatch == 0 {
		return 0
	}
	return skillsMatch / maxPossibleMatch * timingFactor
}

// SynergyPercentage combines V^R, H^R and alignment.
func SynergyPercentage(vr, hr, alignment float64) float64 {
	return vr * hr * alignment / 100.0
}

// AIReadinessScore is the composite alpha*V^R + (1-alpha)*H^R + beta*synergy.
// The synergy term is not normalized and can dominate the sum.
func AIReadinessScore(vr, hr, synergy, alpha, beta float64) float64 {
	return alpha*vr + (1-alpha)*hr + beta*synergy
}

// FallbackAlignment recovers an alignment factor from a previous synergy value.
func FallbackAlignment(previousSynergy, previousVR, previousHR float64) float64 {
	denom := previousVR * previousHR / 100
	if denom == 0 {
		return 0
	}
	return previousSynergy / denom
}
