package scoring

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func sampleProfile() Profile {
	return Profile{
		PromptingScore:              0.75,
		ToolsScore:                  0.6,
		UnderstandingScore:          0.8,
		DataLiteracyScore:           0.9,
		OutputQualityWithAI:         90,
		OutputQualityWithoutAI:      60,
		TimeWithoutAI:               4,
		TimeWithAI:                  1,
		ErrorsCaught:                15,
		TotalAIErrors:               20,
		AppropriateTrustDecisions:   25,
		TotalDecisions:              30,
		DeltaProficiency:            0.3,
		DeltaHoursInvested:          10,
		EducationLevel:              EducationMasters,
		YearsExperience:             5,
		PortfolioScore:              0.85,
		RecognitionScore:            0.7,
		CredentialsScore:            0.9,
		CognitiveFlexibility:        85,
		SocialEmotionalIntelligence: 90,
		StrategicCareerManagement:   75,
	}
}

func TestTechnicalAISkills(t *testing.T) {
	got := TechnicalAISkills(0.75, 0.6, 0.8, 0.9)
	if !approx(got, 0.7625) {
		t.Fatalf("expected 0.7625, got %v", got)
	}
}

func TestAIAugmentedProductivity(t *testing.T) {
	cases := []struct {
		name                                 string
		qWith, qWithout, tWithout, tWith, want float64
	}{
		{name: "ratio", qWith: 90, qWithout: 60, tWithout: 4, tWith: 1, want: 6},
		{name: "zero_quality_without", qWith: 90, qWithout: 0, tWithout: 4, tWith: 1, want: 0},
		{name: "zero_time_with", qWith: 90, qWithout: 60, tWithout: 4, tWith: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AIAugmentedProductivity(tc.qWith, tc.qWithout, tc.tWithout, tc.tWith)
			if !approx(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCriticalAIJudgment(t *testing.T) {
	cases := []struct {
		name                                  string
		caught, totalErrors, trust, decisions float64
		want                                  float64
	}{
		{name: "both_ratios", caught: 15, totalErrors: 20, trust: 25, decisions: 30, want: 1 - (0.75+25.0/30.0)/2},
		{name: "no_errors_uses_trust_only", caught: 5, totalErrors: 0, trust: 20, decisions: 40, want: 0.75},
		{name: "no_decisions_uses_errors_only", caught: 10, totalErrors: 20, trust: 7, decisions: 0, want: 0.75},
		{name: "both_zero", caught: 3, totalErrors: 0, trust: 3, decisions: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CriticalAIJudgment(tc.caught, tc.totalErrors, tc.trust, tc.decisions)
			if !approx(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAILearningVelocity(t *testing.T) {
	if got := AILearningVelocity(0.3, 10); !approx(got, 0.03) {
		t.Fatalf("expected 0.03, got %v", got)
	}
	if got := AILearningVelocity(0.3, 0); got != 0 {
		t.Fatalf("expected 0 for zero hours, got %v", got)
	}
}

func TestAIFluencyClampsComponents(t *testing.T) {
	got := AIFluency(0.7625, 6, 0.5, 0.03)
	want := 0.1*0.7625 + 0.2*1 + 0.3*0.5 + 0.4*0.03
	if !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := AIFluency(5, 5, 5, 5); !approx(got, 1) {
		t.Fatalf("expected saturated fluency 1, got %v", got)
	}
}

func TestEducationFoundation(t *testing.T) {
	cases := map[string]float64{
		"PhD":                         1.0,
		"Master's":                    0.8,
		"Bachelor's":                  0.6,
		"Associate's/Certificate":     0.4,
		"Some College":                0.3,
		"HS + significant coursework": 0.2,
		"Other":                       0.0,
		"Kindergarten":                0.0,
		"":                            0.0,
		"  PhD ":                      1.0,
	}
	for level, want := range cases {
		if got := EducationFoundation(level); got != want {
			t.Fatalf("EducationFoundation(%q): expected %v, got %v", level, want, got)
		}
	}
}

func TestEducationLevelsOrdered(t *testing.T) {
	levels := EducationLevels()
	if len(levels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(levels))
	}
	if levels[0].Level != EducationPhD || levels[len(levels)-1].Level != EducationOther {
		t.Fatalf("unexpected ordering: %+v", levels)
	}
}

func TestPracticalExperienceMonotonicAndSaturating(t *testing.T) {
	if got := PracticalExperience(0, DefaultExperienceGamma); got != 0 {
		t.Fatalf("expected 0 for no experience, got %v", got)
	}
	prev := -1.0
	for years := 0.0; years <= 60; years += 0.5 {
		got := PracticalExperience(years, DefaultExperienceGamma)
		if got <= prev {
			t.Fatalf("expected strictly increasing at %v years: %v <= %v", years, got, prev)
		}
		if got >= 1 {
			t.Fatalf("expected < 1 at %v years, got %v", years, got)
		}
		prev = got
	}
	if got := PracticalExperience(1e9, DefaultExperienceGamma); 1-got > 1e-6 {
		t.Fatalf("expected approach to 1, got %v", got)
	}
	if got := PracticalExperience(5, DefaultExperienceGamma); !approx(got, 5/(5+1/0.15)) {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestDomainExpertise(t *testing.T) {
	got := DomainExpertise(0.8, 0.5, 0.8)
	want := 0.125*0.8 + 0.25*0.5 + 0.625*0.8
	if !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAdaptiveCapacityScales(t *testing.T) {
	if got := AdaptiveCapacity(85, 90, 75); !approx(got, 250.0/3) {
		t.Fatalf("expected mean on caller scale, got %v", got)
	}
	if got := AdaptiveCapacityFromPercent(85, 90, 75); !approx(got, 250.0/300) {
		t.Fatalf("expected [0,1] capacity, got %v", got)
	}
}

func TestIdiosyncraticReadinessWeights(t *testing.T) {
	if got := IdiosyncraticReadiness(1, 1, 1); !approx(got, 1) {
		t.Fatalf("expected weights to sum to 1, got %v", got)
	}
	if got := IdiosyncraticReadiness(0.5, 0.2, 0.1); !approx(got, 0.45*0.5+0.35*0.2+0.2*0.1) {
		t.Fatalf("unexpected V^R %v", got)
	}
}

func TestEvaluateReadinessSampleProfile(t *testing.T) {
	r := EvaluateReadiness(sampleProfile(), DefaultExperienceGamma)

	wantFluency := 0.1*0.7625 + 0.2*1 + 0.3*(1-(0.75+25.0/30.0)/2) + 0.4*0.03
	if !approx(r.AIFluency, wantFluency) {
		t.Fatalf("fluency: expected %v, got %v", wantFluency, r.AIFluency)
	}
	wantDomain := 0.125*0.8 + 0.25*(5/(5+1/0.15)) + 0.625*((0.85+0.7+0.9)/3)
	if !approx(r.DomainExpertise, wantDomain) {
		t.Fatalf("domain: expected %v, got %v", wantDomain, r.DomainExpertise)
	}
	if !approx(r.AdaptiveCapacity, 250.0/300) {
		t.Fatalf("adaptive: expected %v, got %v", 250.0/300, r.AdaptiveCapacity)
	}
	wantVR := 0.45*wantFluency + 0.35*wantDomain + 0.20*(250.0/300)
	if !approx(r.VR, wantVR) {
		t.Fatalf("vr: expected %v, got %v", wantVR, r.VR)
	}
	if r.Fluency.AIAugmentedProductivity != 6 {
		t.Fatalf("expected unclamped productivity in breakdown, got %v", r.Fluency.AIAugmentedProductivity)
	}
}

func TestEvaluateReadinessBounded(t *testing.T) {
	profiles := []Profile{
		{},
		sampleProfile(),
		{
			PromptingScore: 1, ToolsScore: 1, UnderstandingScore: 1, DataLiteracyScore: 1,
			OutputQualityWithAI: 100, OutputQualityWithoutAI: 1, TimeWithoutAI: 100, TimeWithAI: 0.1,
			ErrorsCaught: 0, TotalAIErrors: 100, AppropriateTrustDecisions: 0, TotalDecisions: 100,
			DeltaProficiency: 1, DeltaHoursInvested: 0.01,
			EducationLevel: EducationPhD, YearsExperience: 80,
			PortfolioScore: 1, RecognitionScore: 1, CredentialsScore: 1,
			CognitiveFlexibility: 100, SocialEmotionalIntelligence: 100, StrategicCareerManagement: 100,
		},
	}
	for i, p := range profiles {
		r := EvaluateReadiness(p, DefaultExperienceGamma)
		for name, v := range map[string]float64{
			"aiFluency":        r.AIFluency,
			"domainExpertise":  r.DomainExpertise,
			"adaptiveCapacity": r.AdaptiveCapacity,
			"vr":               r.VR,
		} {
			if v < -eps || v > 1+eps {
				t.Fatalf("profile %d: %s out of [0,1]: %v", i, name, v)
			}
		}
	}
}

func TestFixedWeightsSumToOne(t *testing.T) {
	if err := ValidateWeights(); err != nil {
		t.Fatalf("ValidateWeights: %v", err)
	}
}
