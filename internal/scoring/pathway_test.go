package scoring

import "testing"

func promptPathway() Pathway {
	return Pathway{
		Name:                  "Prompt Engineering Fundamentals",
		Category:              "AI-Fluency",
		ImpactAIFluency:       0.2,
		ImpactDomainExpertise: 0.05,
		ImpactAdaptive:        0.1,
	}
}

func TestApplyPathwayScalesByCompletionAndMastery(t *testing.T) {
	f, d, a := ApplyPathway(0.3, 0.4, 0.5, promptPathway(), Completion{Completion: 0.5, Mastery: 0.5})
	if !approx(f, 0.35) || !approx(d, 0.4125) || !approx(a, 0.525) {
		t.Fatalf("unexpected components %v %v %v", f, d, a)
	}
}

func TestApplyPathwayNeverExceedsCeiling(t *testing.T) {
	huge := Pathway{ImpactAIFluency: 50, ImpactDomainExpertise: 3, ImpactAdaptive: 1e6}
	for _, start := range []float64{0, 0.5, 0.99, 1} {
		f, d, a := ApplyPathway(start, start, start, huge, FullCompletion())
		if f > 1 || d > 1 || a > 1 {
			t.Fatalf("start %v: component exceeded 1.0: %v %v %v", start, f, d, a)
		}
	}
}

func TestApplyPathwayNegativeImpactNotFloored(t *testing.T) {
	regress := Pathway{ImpactAIFluency: -0.5}
	f, _, _ := ApplyPathway(0.2, 0.2, 0.2, regress, FullCompletion())
	if !approx(f, -0.3) {
		t.Fatalf("expected -0.3 without floor, got %v", f)
	}
}

func TestSimulateUsesStoredAlignment(t *testing.T) {
	current := Snapshot{
		AIFluency:        0.4,
		DomainExpertise:  0.5,
		AdaptiveCapacity: 0.6,
		HR:               28,
		AlignmentFactor:  1.17,
	}
	current.VR = IdiosyncraticReadiness(current.AIFluency, current.DomainExpertise, current.AdaptiveCapacity)
	current.SynergyPercentage = SynergyPercentage(current.VR, current.HR, current.AlignmentFactor)
	current.AIR = AIReadinessScore(current.VR, current.HR, current.SynergyPercentage, DefaultAlpha, DefaultBeta)

	next := Simulate(current, true, promptPathway(), FullCompletion(), DefaultAlpha, DefaultBeta)

	if next.HR != current.HR {
		t.Fatalf("expected H^R unchanged, got %v", next.HR)
	}
	wantVR := IdiosyncraticReadiness(0.6, 0.55, 0.7)
	if !approx(next.VR, wantVR) {
		t.Fatalf("vr: expected %v, got %v", wantVR, next.VR)
	}
	wantSynergy := wantVR * 28 * 1.17 / 100
	if !approx(next.SynergyPercentage, wantSynergy) {
		t.Fatalf("synergy: expected %v, got %v", wantSynergy, next.SynergyPercentage)
	}
	wantAIR := 0.6*wantVR + 0.4*28 + 0.15*wantSynergy
	if !approx(next.AIR, wantAIR) {
		t.Fatalf("air: expected %v, got %v", wantAIR, next.AIR)
	}
	if next.AIR <= current.AIR {
		t.Fatalf("expected a positive pathway to raise AI-R")
	}
}

func TestSimulateFallbackAlignment(t *testing.T) {
	current := Snapshot{AIFluency: 0.4, DomainExpertise: 0.5, AdaptiveCapacity: 0.6, HR: 20}
	current.VR = IdiosyncraticReadiness(0.4, 0.5, 0.6)
	current.SynergyPercentage = SynergyPercentage(current.VR, current.HR, 0.9)

	next := Simulate(current, false, promptPathway(), FullCompletion(), DefaultAlpha, DefaultBeta)
	if !approx(next.AlignmentFactor, 0.9) {
		t.Fatalf("expected recovered alignment 0.9, got %v", next.AlignmentFactor)
	}
}

func TestSimulateFallbackWithZeroPriorScores(t *testing.T) {
	next := Simulate(Snapshot{SynergyPercentage: 3}, false, promptPathway(), FullCompletion(), DefaultAlpha, DefaultBeta)
	if next.AlignmentFactor != 0 || next.SynergyPercentage != 0 {
		t.Fatalf("expected zero alignment and synergy, got %+v", next)
	}
}

func TestSimulateZeroCompletionIsIdentity(t *testing.T) {
	current := Snapshot{AIFluency: 0.4, DomainExpertise: 0.5, AdaptiveCapacity: 0.6, HR: 20, AlignmentFactor: 1}
	current.VR = IdiosyncraticReadiness(0.4, 0.5, 0.6)
	current.SynergyPercentage = SynergyPercentage(current.VR, current.HR, 1)
	current.AIR = AIReadinessScore(current.VR, current.HR, current.SynergyPercentage, DefaultAlpha, DefaultBeta)

	next := Simulate(current, true, promptPathway(), Completion{Completion: 0, Mastery: 1}, DefaultAlpha, DefaultBeta)
	delta := next.Sub(current)
	if !approx(delta.AIR, 0) || !approx(delta.VR, 0) {
		t.Fatalf("expected no change, got delta %+v", delta)
	}
}
