package scoring

// componentCeiling is the upper bound of every V^R component.
const componentCeiling = 1.0

// Completion describes how far a pathway was taken.
type Completion struct {
	// Completion and Mastery are each on [0,1].
	Completion float64 `json:"completion" yaml:"completion"`
	Mastery    float64 `json:"mastery" yaml:"mastery"`
}

// FullCompletion is a pathway completed with full mastery.
func FullCompletion() Completion {
	return Completion{Completion: 1, Mastery: 1}
}

// ApplyPathway adds the scaled impacts to each component, capped at 1.0.
// Negative impacts are applied without a lower floor.
func ApplyPathway(aiFluency, domainExpertise, adaptiveCapacity float64, p Pathway, c Completion) (float64, float64, float64) {
	scale := c.Completion * c.Mastery
	return capComponent(aiFluency + p.ImpactAIFluency*scale),
		capComponent(domainExpertise + p.ImpactDomainExpertise*scale),
		capComponent(adaptiveCapacity + p.ImpactAdaptive*scale)
}

func capComponent(v float64) float64 {
	if v > componentCeiling {
		return componentCeiling
	}
	return v
}

// Simulate projects a snapshot forward through a pathway. H^R is unchanged. When
// hasAlignment is false, current.AlignmentFactor is ignored and the alignment is
// recovered from the previous synergy value.
func Simulate(current Snapshot, hasAlignment bool, p Pathway, c Completion, alpha, beta float64) Snapshot {
	fluency, domain, adaptive := ApplyPathway(current.AIFluency, current.DomainExpertise, current.AdaptiveCapacity, p, c)

	alignment := current.AlignmentFactor
	if !hasAlignment {
		alignment = FallbackAlignment(current.SynergyPercentage, current.VR, current.HR)
	}

	next := Snapshot{
		AIFluency:        fluency,
		DomainExpertise:  domain,
		AdaptiveCapacity: adaptive,
		VR:               IdiosyncraticReadiness(fluency, domain, adaptive),
		HR:               current.HR,
		AlignmentFactor:  alignment,
	}
	next.SynergyPercentage = SynergyPercentage(next.VR, next.HR, alignment)
	next.AIR = AIReadinessScore(next.VR, next.HR, next.SynergyPercentage, alpha, beta)
	return next
}
