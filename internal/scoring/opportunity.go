package scoring

import "math"

// AIEnhancementPotential passes the occupation's enhancement score through.
func AIEnhancementPotential(score float64) float64 {
	return score
}

// JobGrowthProjection maps a growth rate onto an integer 0-100 scale centered at 50.
func JobGrowthProjection(growthRate float64) int {
	return int(clamp(50+growthRate*100, 0, 100))
}

// WagePremium is the relative premium of the AI-skilled wage over the median.
func WagePremium(skilledWage, medianWage float64) float64 {
	if medianWage == 0 {
		return 0
	}
	return (skilledWage - medianWage) / medianWage
}

// EntryAccessibility decays with the years of education and experience required.
func EntryAccessibility(educationYears, experienceYears float64) float64 {
	denom := 1 + 0.1*(educationYears+experienceYears)
	if denom == 0 {
		return 0
	}
	return 1 / denom
}

// BaseOpportunity is the weighted H_base sum.
func BaseOpportunity(enhancement float64, growthProjection int, wagePremium, accessibility float64) float64 {
	w := opportunityWeights
	return w.Enhancement*enhancement +
		w.Growth*float64(growthProjection) +
		w.WagePremium*wagePremium +
		w.Accessibility*accessibility
}

// GrowthMultiplier dampens posting growth by the exponent lambda.
func GrowthMultiplier(currentPostings, previousPostings, lambda float64) float64 {
	if previousPostings == 0 {
		return 1.0
	}
	return math.Pow(currentPostings/previousPostings, lambda)
}

// RegionalMultiplier adjusts for local demand and remote work.
func RegionalMultiplier(localDemand, nationalDemand, remoteWorkFactor, gamma float64) float64 {
	if nationalDemand == 0 {
		return 1.0
	}
	return 1 + gamma*(localDemand/nationalDemand+remoteWorkFactor-1)
}

// SystematicOpportunity is H_base scaled by both multipliers.
func SystematicOpportunity(hBase, growthMultiplier, regionalMultiplier float64) float64 {
	return hBase * growthMultiplier * regionalMultiplier
}

// EvaluateOpportunity computes H^R and its breakdown for an occupation.
func EvaluateOpportunity(o Occupation, lambda, gamma float64) (float64, OpportunityBreakdown) {
	b := OpportunityBreakdown{
		AIEnhancementPotential: AIEnhancementPotential(o.AIEnhancementScore),
		JobGrowthProjection:    JobGrowthProjection(o.JobGrowthRate),
		WagePremium:            WagePremium(o.AISkilledWage, o.MedianWage),
		EntryAccessibility:     EntryAccessibility(o.EducationYearsRequired, o.ExperienceYearsRequired),
		GrowthMultiplier:       GrowthMultiplier(o.CurrentJobPostings, o.PreviousJobPostings, lambda),
		RegionalMultiplier:     RegionalMultiplier(o.LocalDemand, o.NationalAvgDemand, o.RemoteWorkFactor, gamma),
	}
	b.HBase = BaseOpportunity(b.AIEnhancementPotential, b.JobGrowthProjection, b.WagePremium, b.EntryAccessibility)
	return SystematicOpportunity(b.HBase, b.GrowthMultiplier, b.RegionalMultiplier), b
}
