package scoring

import (
	"errors"
	"fmt"
	"math"
)

const weightTolerance = 0.001

// ReadinessWeights weights the three V^R components.
type ReadinessWeights struct {
	AIFluency        float64
	DomainExpertise  float64
	AdaptiveCapacity float64
}

// FluencyWeights weights the four AI-fluency sub-measures.
type FluencyWeights struct {
	Technical    float64
	Productivity float64
	Judgment     float64
	Velocity     float64
}

// DomainWeights weights the three domain-expertise sub-measures.
type DomainWeights struct {
	Education      float64
	Experience     float64
	Specialization float64
}

// OpportunityWeights weights the four H_base terms.
type OpportunityWeights struct {
	Enhancement   float64
	Growth        float64
	WagePremium   float64
	Accessibility float64
}

var (
	readinessWeights   = ReadinessWeights{AIFluency: 0.45, DomainExpertise: 0.35, AdaptiveCapacity: 0.20}
	fluencyWeights     = FluencyWeights{Technical: 0.1, Productivity: 0.2, Judgment: 0.3, Velocity: 0.4}
	domainWeights      = DomainWeights{Education: 0.125, Experience: 0.25, Specialization: 0.625}
	opportunityWeights = OpportunityWeights{Enhancement: 0.30, Growth: 0.30, WagePremium: 0.25, Accessibility: 0.15}
)

// Sum returns the total of all weights.
func (w ReadinessWeights) Sum() float64 {
	return w.AIFluency + w.DomainExpertise + w.AdaptiveCapacity
}

// Sum returns the total of all weights.
func (w FluencyWeights) Sum() float64 {
	return w.Technical + w.Productivity + w.Judgment + w.Velocity
}

// Sum returns the total of all weights.
func (w DomainWeights) Sum() float64 {
	return w.Education + w.Experience + w.Specialization
}

// Sum returns the total of all weights.
func (w OpportunityWeights) Sum() float64 {
	return w.Enhancement + w.Growth + w.WagePremium + w.Accessibility
}

func validateWeightSum(name string, sum float64) error {
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%s weights sum to %.4f, must sum to 1.0", name, sum)
	}
	return nil
}

// Default tuning constants.
const (
	DefaultAlpha            = 0.6
	DefaultBeta             = 0.15
	DefaultGrowthLambda     = 0.3
	DefaultRegionalGamma    = 0.2
	DefaultExperienceGamma  = 0.15
	DefaultMaxPossibleMatch = 100.0
)

// Params carries the caller-adjustable coefficients of one evaluation.
type Params struct {
	// Alpha trades individual readiness against market opportunity.
	Alpha float64 `json:"alpha" yaml:"alpha"`
	// Beta scales the synergy amplification.
	Beta             float64 `json:"beta" yaml:"beta"`
	GrowthLambda     float64 `json:"lambda" yaml:"lambda"`
	RegionalGamma    float64 `json:"gamma" yaml:"gamma"`
	ExperienceGamma  float64 `json:"experienceGamma" yaml:"experienceGamma"`
	MaxPossibleMatch float64 `json:"maxPossibleMatch" yaml:"maxPossibleMatch"`
}

// DefaultParams returns the reference coefficients.
func DefaultParams() Params {
	return Params{
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		GrowthLambda:     DefaultGrowthLambda,
		RegionalGamma:    DefaultRegionalGamma,
		ExperienceGamma:  DefaultExperienceGamma,
		MaxPossibleMatch: DefaultMaxPossibleMatch,
	}
}

// Validate reports coefficients outside their declared domains.
func (p Params) Validate() error {
	var errs []error
	if p.Alpha < 0 || p.Alpha > 1 {
		errs = append(errs, fmt.Errorf("alpha must be between 0 and 1, got %v", p.Alpha))
	}
	if p.Beta < 0 || p.Beta > 1 {
		errs = append(errs, fmt.Errorf("beta must be between 0 and 1, got %v", p.Beta))
	}
	if p.GrowthLambda < 0 || p.GrowthLambda > 1 {
		errs = append(errs, fmt.Errorf("lambda must be between 0 and 1, got %v", p.GrowthLambda))
	}
	if p.RegionalGamma < 0 || p.RegionalGamma > 1 {
		errs = append(errs, fmt.Errorf("gamma must be between 0 and 1, got %v", p.RegionalGamma))
	}
	if p.ExperienceGamma <= 0 {
		errs = append(errs, fmt.Errorf("experienceGamma must be positive, got %v", p.ExperienceGamma))
	}
	if p.MaxPossibleMatch < 0 {
		errs = append(errs, fmt.Errorf("maxPossibleMatch must not be negative, got %v", p.MaxPossibleMatch))
	}
	return errors.Join(errs...)
}

// ValidateWeights checks that every fixed weight set sums to 1.0.
func ValidateWeights() error {
	return errors.Join(
		validateWeightSum("readiness", readinessWeights.Sum()),
		validateWeightSum("fluency", fluencyWeights.Sum()),
		validateWeightSum("domain", domainWeights.Sum()),
		validateWeightSum("opportunity", opportunityWeights.Sum()),
	)
}
