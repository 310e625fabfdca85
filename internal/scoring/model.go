// Package scoring implements the AI-Readiness Score model: idiosyncratic readiness (V^R),
// systematic opportunity (H^R), synergy, the composite AI-R score and pathway simulation.
// Every function is pure.
package scoring

// Profile holds the self-reported inputs for idiosyncratic readiness.
// Adaptive-capacity measures are on a 0-100 scale; every other score is on [0,1]
// unless its field comment says otherwise.
type Profile struct {
	PromptingScore     float64 `json:"promptingScore" yaml:"promptingScore"`
	ToolsScore         float64 `json:"toolsScore" yaml:"toolsScore"`
	UnderstandingScore float64 `json:"understandingScore" yaml:"understandingScore"`
	DataLiteracyScore  float64 `json:"dataLiteracyScore" yaml:"dataLiteracyScore"`

	// Output quality on 0-100.
	OutputQualityWithAI    float64 `json:"outputQualityWithAi" yaml:"outputQualityWithAi"`
	OutputQualityWithoutAI float64 `json:"outputQualityWithoutAi" yaml:"outputQualityWithoutAi"`
	// Hours to complete a reference task.
	TimeWithAI    float64 `json:"timeWithAi" yaml:"timeWithAi"`
	TimeWithoutAI float64 `json:"timeWithoutAi" yaml:"timeWithoutAi"`

	ErrorsCaught              float64 `json:"errorsCaught" yaml:"errorsCaught"`
	TotalAIErrors             float64 `json:"totalAiErrors" yaml:"totalAiErrors"`
	AppropriateTrustDecisions float64 `json:"appropriateTrustDecisions" yaml:"appropriateTrustDecisions"`
	TotalDecisions            float64 `json:"totalDecisions" yaml:"totalDecisions"`

	DeltaProficiency   float64 `json:"deltaProficiency" yaml:"deltaProficiency"`
	DeltaHoursInvested float64 `json:"deltaHoursInvested" yaml:"deltaHoursInvested"`

	EducationLevel   string  `json:"educationLevel" yaml:"educationLevel"`
	YearsExperience  float64 `json:"yearsExperience" yaml:"yearsExperience"`
	PortfolioScore   float64 `json:"portfolioScore" yaml:"portfolioScore"`
	RecognitionScore float64 `json:"recognitionScore" yaml:"recognitionScore"`
	CredentialsScore float64 `json:"credentialsScore" yaml:"credentialsScore"`

	CognitiveFlexibility        float64 `json:"cognitiveFlexibility" yaml:"cognitiveFlexibility"`
	SocialEmotionalIntelligence float64 `json:"socialEmotionalIntelligence" yaml:"socialEmotionalIntelligence"`
	StrategicCareerManagement   float64 `json:"strategicCareerManagement" yaml:"strategicCareerManagement"`
}

// Occupation is an immutable labor-market reference record.
type Occupation struct {
	Name                    string  `json:"name" yaml:"name"`
	AIEnhancementScore      float64 `json:"aiEnhancementScore" yaml:"aiEnhancementScore"`
	JobGrowthRate           float64 `json:"jobGrowthRate" yaml:"jobGrowthRate"`
	AISkilledWage           float64 `json:"aiSkilledWage" yaml:"aiSkilledWage"`
	MedianWage              float64 `json:"medianWage" yaml:"medianWage"`
	EducationYearsRequired  float64 `json:"educationYearsRequired" yaml:"educationYearsRequired"`
	ExperienceYearsRequired float64 `json:"experienceYearsRequired" yaml:"experienceYearsRequired"`
	CurrentJobPostings      float64 `json:"currentJobPostings" yaml:"currentJobPostings"`
	PreviousJobPostings     float64 `json:"previousJobPostings" yaml:"previousJobPostings"`
	RemoteWorkFactor        float64 `json:"remoteWorkFactor" yaml:"remoteWorkFactor"`
	LocalDemand             float64 `json:"localDemand" yaml:"localDemand"`
	NationalAvgDemand       float64 `json:"nationalAvgDemand" yaml:"nationalAvgDemand"`
}

// Skill is an individual's self-assessed skill on 0-100.
type Skill struct {
	Name  string  `json:"skillName" yaml:"skillName"`
	Score float64 `json:"individualSkillScore" yaml:"individualSkillScore"`
}

// RequiredSkill is an occupation's requirement for a skill.
type RequiredSkill struct {
	Occupation    string  `json:"occupationName" yaml:"occupationName"`
	Name          string  `json:"skillName" yaml:"skillName"`
	RequiredScore float64 `json:"requiredSkillScore" yaml:"requiredSkillScore"`
	Importance    float64 `json:"skillImportance" yaml:"skillImportance"`
}

// Pathway is a learning intervention with fixed impacts on the V^R components.
type Pathway struct {
	Name                  string  `json:"name" yaml:"name"`
	Category              string  `json:"category" yaml:"category"`
	ImpactAIFluency       float64 `json:"impactAiFluency" yaml:"impactAiFluency"`
	ImpactDomainExpertise float64 `json:"impactDomainExpertise" yaml:"impactDomainExpertise"`
	ImpactAdaptive        float64 `json:"impactAdaptiveCapacity" yaml:"impactAdaptiveCapacity"`
}

// Snapshot is a derived, never-persisted view of a scoring state.
type Snapshot struct {
	AIFluency         float64 `json:"aiFluency"`
	DomainExpertise   float64 `json:"domainExpertise"`
	AdaptiveCapacity  float64 `json:"adaptiveCapacity"`
	VR                float64 `json:"vr"`
	HR                float64 `json:"hr"`
	AlignmentFactor   float64 `json:"alignmentFactor"`
	SynergyPercentage float64 `json:"synergyPercentage"`
	AIR               float64 `json:"aiR"`
}

// Sub returns the component-wise difference s - other.
func (s Snapshot) Sub(other Snapshot) Snapshot {
	return Snapshot{
		AIFluency:         s.AIFluency - other.AIFluency,
		DomainExpertise:   s.DomainExpertise - other.DomainExpertise,
		AdaptiveCapacity:  s.AdaptiveCapacity - other.AdaptiveCapacity,
		VR:                s.VR - other.VR,
		HR:                s.HR - other.HR,
		AlignmentFactor:   s.AlignmentFactor - other.AlignmentFactor,
		SynergyPercentage: s.SynergyPercentage - other.SynergyPercentage,
		AIR:               s.AIR - other.AIR,
	}
}

// FluencyBreakdown exposes the four AI-fluency sub-measures before clamping.
type FluencyBreakdown struct {
	TechnicalAISkills       float64 `json:"technicalAiSkills"`
	AIAugmentedProductivity float64 `json:"aiAugmentedProductivity"`
	CriticalAIJudgment      float64 `json:"criticalAiJudgment"`
	AILearningVelocity      float64 `json:"aiLearningVelocity"`
}

// DomainBreakdown exposes the domain-expertise sub-measures.
type DomainBreakdown struct {
	EducationFoundation float64 `json:"educationFoundation"`
	PracticalExperience float64 `json:"practicalExperience"`
	SpecializationDepth float64 `json:"specializationDepth"`
}

// OpportunityBreakdown exposes the H_base terms and the multipliers.
type OpportunityBreakdown struct {
	AIEnhancementPotential float64 `json:"aiEnhancementPotential"`
	JobGrowthProjection    int     `json:"jobGrowthProjection"`
	WagePremium            float64 `json:"wagePremium"`
	EntryAccessibility     float64 `json:"entryAccessibility"`
	HBase                  float64 `json:"hBase"`
	GrowthMultiplier       float64 `json:"growthMultiplier"`
	RegionalMultiplier     float64 `json:"regionalMultiplier"`
}

// SynergyBreakdown exposes the alignment inputs.
type SynergyBreakdown struct {
	SkillsMatchScore float64 `json:"skillsMatchScore"`
	MaxPossibleMatch float64 `json:"maxPossibleMatch"`
	TimingFactor     float64 `json:"timingFactor"`
}

// Result is the structured output of a full evaluation.
type Result struct {
	Occupation  string               `json:"occupation"`
	Snapshot    Snapshot             `json:"snapshot"`
	Fluency     FluencyBreakdown     `json:"fluency"`
	Domain      DomainBreakdown      `json:"domain"`
	Opportunity OpportunityBreakdown `json:"opportunity"`
	Synergy     SynergyBreakdown     `json:"synergy"`
	Params      Params               `json:"params"`
}
