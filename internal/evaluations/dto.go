package evaluations

import (
	"fmt"
	"strings"
	"time"

	"airscore-backend/internal/scoring"
)

// ParamsInput overrides individual scoring coefficients; nil fields keep the defaults.
type ParamsInput struct {
	Alpha            *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta             *float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	Lambda           *float64 `json:"lambda,omitempty" yaml:"lambda,omitempty"`
	Gamma            *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
	ExperienceGamma  *float64 `json:"experienceGamma,omitempty" yaml:"experienceGamma,omitempty"`
	MaxPossibleMatch *float64 `json:"maxPossibleMatch,omitempty" yaml:"maxPossibleMatch,omitempty"`
}

// Resolve merges the overrides onto scoring.DefaultParams.
func (p *ParamsInput) Resolve() scoring.Params {
	out := scoring.DefaultParams()
	if p == nil {
		return out
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Alpha, p.Alpha)
	set(&out.Beta, p.Beta)
	set(&out.GrowthLambda, p.Lambda)
	set(&out.RegionalGamma, p.Gamma)
	set(&out.ExperienceGamma, p.ExperienceGamma)
	set(&out.MaxPossibleMatch, p.MaxPossibleMatch)
	return out
}

// EvaluateInput scores one profile against one occupation.
type EvaluateInput struct {
	Profile    scoring.Profile `json:"profile" yaml:"profile"`
	Occupation string          `json:"occupation" yaml:"occupation"`
	Skills     []scoring.Skill `json:"skills" yaml:"skills"`
	Params     *ParamsInput    `json:"params,omitempty" yaml:"params,omitempty"`
}

func (in EvaluateInput) validate(v *ValidationError, prefix string) scoring.Params {
	if strings.TrimSpace(in.Occupation) == "" {
		v.add(prefix+"occupation", "is required")
	}
	validateSkills(v, prefix, in.Skills)
	params := in.Params.Resolve()
	validateParams(v, prefix, params)
	return params
}

// Evaluation is the service-level result of scoring a profile.
type Evaluation struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Cached    bool           `json:"cached"`
	Result    scoring.Result `json:"result"`
}

// CurrentState is a caller-supplied snapshot. AlignmentFactor may be omitted, in which case
// it is recovered from the synergy percentage.
type CurrentState struct {
	AIFluency         float64  `json:"aiFluency"`
	DomainExpertise   float64  `json:"domainExpertise"`
	AdaptiveCapacity  float64  `json:"adaptiveCapacity"`
	VR                float64  `json:"vr"`
	HR                float64  `json:"hr"`
	AlignmentFactor   *float64 `json:"alignmentFactor,omitempty"`
	SynergyPercentage float64  `json:"synergyPercentage"`
	AIR               float64  `json:"aiR"`
}

func (s CurrentState) snapshot() (scoring.Snapshot, bool) {
	snap := scoring.Snapshot{
		AIFluency:         s.AIFluency,
		DomainExpertise:   s.DomainExpertise,
		AdaptiveCapacity:  s.AdaptiveCapacity,
		VR:                s.VR,
		HR:                s.HR,
		SynergyPercentage: s.SynergyPercentage,
		AIR:               s.AIR,
	}
	if s.AlignmentFactor == nil {
		return snap, false
	}
	snap.AlignmentFactor = *s.AlignmentFactor
	return snap, true
}

// SimulateInput projects a pathway onto either a supplied snapshot or a fresh evaluation.
// Exactly one of Current and Evaluation must be set.
type SimulateInput struct {
	Pathway    string         `json:"pathway" yaml:"pathway"`
	Completion *float64       `json:"completion,omitempty" yaml:"completion,omitempty"`
	Mastery    *float64       `json:"mastery,omitempty" yaml:"mastery,omitempty"`
	Current    *CurrentState  `json:"current,omitempty" yaml:"-"`
	Evaluation *EvaluateInput `json:"evaluation,omitempty" yaml:"evaluation,omitempty"`
	// Alpha and Beta apply to a supplied snapshot; an embedded evaluation uses its own params.
	Alpha *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta  *float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
}

func (in SimulateInput) completion() scoring.Completion {
	c := scoring.FullCompletion()
	if in.Completion != nil {
		c.Completion = *in.Completion
	}
	if in.Mastery != nil {
		c.Mastery = *in.Mastery
	}
	return c
}

// Simulation holds the before/after view of a pathway.
type Simulation struct {
	Pathway      scoring.Pathway    `json:"pathway"`
	Completion   scoring.Completion `json:"completion"`
	EvaluationID string             `json:"evaluationId,omitempty"`
	Current      scoring.Snapshot   `json:"current"`
	Projected    scoring.Snapshot   `json:"projected"`
	Delta        scoring.Snapshot   `json:"delta"`
}

// CompareInput scores one profile against every catalog occupation.
type CompareInput struct {
	Profile scoring.Profile `json:"profile" yaml:"profile"`
	Skills  []scoring.Skill `json:"skills" yaml:"skills"`
	Params  *ParamsInput    `json:"params,omitempty" yaml:"params,omitempty"`
}

// Comparison is one ranked occupation.
type Comparison struct {
	Rank       int              `json:"rank"`
	Occupation string           `json:"occupation"`
	Snapshot   scoring.Snapshot `json:"snapshot"`
}

func validateSkills(v *ValidationError, prefix string, skills []scoring.Skill) {
	for i, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			v.add(fmt.Sprintf("%sskills[%d].skillName", prefix, i), "is required")
		}
	}
}

func validateParams(v *ValidationError, prefix string, p scoring.Params) {
	if err := p.Validate(); err != nil {
		v.add(prefix+"params", err.Error())
	}
}

func validateUnit(v *ValidationError, field string, value float64) {
	if value < 0 || value > 1 {
		v.add(field, fmt.Sprintf("must be between 0 and 1, got %v", value))
	}
}
