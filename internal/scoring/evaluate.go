package scoring

// Input bundles everything needed for one evaluation.
type Input struct {
	Profile        Profile
	Occupation     Occupation
	Skills         []Skill
	RequiredSkills []RequiredSkill
	Params         Params
}

// Evaluate runs the V^R, H^R and synergy engines and composes the AI-R score.
func Evaluate(in Input) Result {
	params := in.Params
	readiness := EvaluateReadiness(in.Profile, params.ExperienceGamma)
	hr, opportunity := EvaluateOpportunity(in.Occupation, params.GrowthLambda, params.RegionalGamma)

	synergy := SynergyBreakdown{
		SkillsMatchScore: SkillsMatchScore(in.Skills, in.RequiredSkills),
		MaxPossibleMatch: params.MaxPossibleMatch,
		TimingFactor:     TimingFactor(in.Profile.YearsExperience),
	}
	alignment := AlignmentFactor(synergy.SkillsMatchScore, synergy.MaxPossibleMatch, synergy.TimingFactor)

	snap := Snapshot{
		AIFluency:        readiness.AIFluency,
		DomainExpertise:  readiness.DomainExpertise,
		AdaptiveCapacity: readiness.AdaptiveCapacity,
		VR:               readiness.VR,
		HR:               hr,
		AlignmentFactor:  alignment,
	}
	snap.SynergyPercentage = SynergyPercentage(snap.VR, snap.HR, alignment)
	snap.AIR = AIReadinessScore(snap.VR, snap.HR, snap.SynergyPercentage, params.Alpha, params.Beta)

	return Result{
		Occupation:  in.Occupation.Name,
		Snapshot:    snap,
		Fluency:     readiness.Fluency,
		Domain:      readiness.Domain,
		Opportunity: opportunity,
		Synergy:     synergy,
		Params:      params,
	}
}
