package scoring

import "strings"

// Education levels accepted by EducationFoundation.
const (
	EducationPhD         = "PhD"
	EducationMasters     = "Master's"
	EducationBachelors   = "Bachelor's"
	EducationAssociates  = "Associate's/Certificate"
	EducationSomeCollege = "Some College"
	EducationHSPlus      = "HS + significant coursework"
	EducationOther       = "Other"
)

// adaptivePercentScale converts 0-100 adaptive-capacity inputs to the canonical [0,1] scale.
const adaptivePercentScale = 100.0

var educationFoundation = map[string]float64{
	EducationPhD:         1.0,
	EducationMasters:     0.8,
	EducationBachelors:   0.6,
	EducationAssociates:  0.4,
	EducationSomeCollege: 0.3,
	EducationHSPlus:      0.2,
	EducationOther:       0.0,
}

// EducationLevel pairs an accepted level with its foundation value.
type EducationLevel struct {
	Level string  `json:"level"`
	Value float64 `json:"value"`
}

// EducationLevels lists the accepted education levels, highest first.
func EducationLevels() []EducationLevel {
	order := []string{
		EducationPhD,
		EducationMasters,
		EducationBachelors,
		EducationAssociates,
		EducationSomeCollege,
		EducationHSPlus,
		EducationOther,
	}
	out := make([]EducationLevel, 0, len(order))
	for _, level := range order {
		out = append(out, EducationLevel{Level: level, Value: educationFoundation[level]})
	}
	return out
}

// TechnicalAISkills is the mean of the four technical sub-scores.
func TechnicalAISkills(prompting, tools, understanding, dataLiteracy float64) float64 {
	return (prompting + tools + understanding + dataLiteracy) / 4
}

// AIAugmentedProductivity is the quality ratio times the speed-up ratio.
func AIAugmentedProductivity(qualityWithAI, qualityWithoutAI, timeWithoutAI, timeWithAI float64) float64 {
	if qualityWithoutAI == 0 || timeWithAI == 0 {
		return 0
	}
	return (qualityWithAI / qualityWithoutAI) * (timeWithoutAI / timeWithAI)
}

// CriticalAIJudgment is one minus the mean of the error-catch and trust ratios.
// When exactly one denominator is zero only the other ratio is used, halved.
func CriticalAIJudgment(errorsCaught, totalAIErrors, trustDecisions, totalDecisions float64) float64 {
	switch {
	case totalAIErrors == 0 && totalDecisions == 0:
		return 0
	case totalAIErrors == 0:
		return 1 - (trustDecisions/totalDecisions)/2
	case totalDecisions == 0:
		return 1 - (errorsCaught/totalAIErrors)/2
	}
	return 1 - (errorsCaught/totalAIErrors+trustDecisions/totalDecisions)/2
}

// AILearningVelocity is proficiency gained per hour invested.
func AILearningVelocity(deltaProficiency, deltaHours float64) float64 {
	if deltaHours == 0 {
		return 0
	}
	return deltaProficiency / deltaHours
}

// AIFluency weights the four sub-measures, each clamped to [0,1] first.
func AIFluency(technical, productivity, judgment, velocity float64) float64 {
	w := fluencyWeights
	return w.Technical*clamp01(technical) +
		w.Productivity*clamp01(productivity) +
		w.Judgment*clamp01(judgment) +
		w.Velocity*clamp01(velocity)
}

// EducationFoundation maps an education level to its foundation value.
// Unrecognized levels score 0.
func EducationFoundation(level string) float64 {
	return educationFoundation[strings.TrimSpace(level)]
}

// PracticalExperience is a saturating curve years / (years + 1/gamma).
func PracticalExperience(years, gamma float64) float64 {
	if gamma <= 0 {
		gamma = DefaultExperienceGamma
	}
	denom := years + 1/gamma
	if denom == 0 {
		return 0
	}
	return years / denom
}

// SpecializationDepth is the mean of portfolio, recognition and credentials.
func SpecializationDepth(portfolio, recognition, credentials float64) float64 {
	return (portfolio + recognition + credentials) / 3
}

// DomainExpertise weights education, experience and specialization.
func DomainExpertise(education, experience, specialization float64) float64 {
	w := domainWeights
	return w.Education*clamp01(education) +
		w.Experience*clamp01(experience) +
		w.Specialization*clamp01(specialization)
}

// AdaptiveCapacity is the mean of the three adaptive measures, on the caller's scale.
func AdaptiveCapacity(cognitiveFlexibility, socialEmotional, strategicCareer float64) float64 {
	return (cognitiveFlexibility + socialEmotional + strategicCareer) / 3
}

// AdaptiveCapacityFromPercent takes 0-100 inputs and returns capacity on [0,1].
func AdaptiveCapacityFromPercent(cognitiveFlexibility, socialEmotional, strategicCareer float64) float64 {
	return clamp01(AdaptiveCapacity(cognitiveFlexibility, socialEmotional, strategicCareer) / adaptivePercentScale)
}

// IdiosyncraticReadiness is the weighted V^R sum.
func IdiosyncraticReadiness(aiFluency, domainExpertise, adaptiveCapacity float64) float64 {
	w := readinessWeights
	return w.AIFluency*aiFluency + w.DomainExpertise*domainExpertise + w.AdaptiveCapacity*adaptiveCapacity
}

// Readiness is the V^R evaluation of a profile.
type Readiness struct {
	Fluency          FluencyBreakdown
	Domain           DomainBreakdown
	AIFluency        float64
	DomainExpertise  float64
	AdaptiveCapacity float64
	VR               float64
}

// EvaluateReadiness computes V^R and its components from a profile.
func EvaluateReadiness(p Profile, experienceGamma float64) Readiness {
	fluency := FluencyBreakdown{
		TechnicalAISkills:       TechnicalAISkills(p.PromptingScore, p.ToolsScore, p.UnderstandingScore, p.DataLiteracyScore),
		AIAugmentedProductivity: AIAugmentedProductivity(p.OutputQualityWithAI, p.OutputQualityWithoutAI, p.TimeWithoutAI, p.TimeWithAI),
		CriticalAIJudgment:      CriticalAIJudgment(p.ErrorsCaught, p.TotalAIErrors, p.AppropriateTrustDecisions, p.TotalDecisions),
		AILearningVelocity:      AILearningVelocity(p.DeltaProficiency, p.DeltaHoursInvested),
	}
	domain := DomainBreakdown{
		EducationFoundation: EducationFoundation(p.EducationLevel),
		PracticalExperience: PracticalExperience(p.YearsExperience, experienceGamma),
		SpecializationDepth: SpecializationDepth(p.PortfolioScore, p.RecognitionScore, p.CredentialsScore),
	}

	r := Readiness{
		Fluency: fluency,
		Domain:  domain,
		AIFluency: AIFluency(
			fluency.TechnicalAISkills,
			fluency.AIAugmentedProductivity,
			fluency.CriticalAIJudgment,
			fluency.AILearningVelocity,
		),
		DomainExpertise:  DomainExpertise(domain.EducationFoundation, domain.PracticalExperience, domain.SpecializationDepth),
		AdaptiveCapacity: AdaptiveCapacityFromPercent(p.CognitiveFlexibility, p.SocialEmotionalIntelligence, p.StrategicCareerManagement),
	}
	r.VR = IdiosyncraticReadiness(r.AIFluency, r.DomainExpertise, r.AdaptiveCapacity)
	return r
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
