package catalog

import "airscore-backend/internal/scoring"

func defaultOccupations() []scoring.Occupation {
	return []scoring.Occupation{
		{Name: "Data Analyst with AI Skills", AIEnhancementScore: 0.8, JobGrowthRate: 0.25, AISkilledWage: 120000, MedianWage: 90000, EducationYearsRequired: 4, ExperienceYearsRequired: 2, CurrentJobPostings: 500, PreviousJobPostings: 400, RemoteWorkFactor: 0.6, LocalDemand: 1.2, NationalAvgDemand: 1.0},
		{Name: "AI UX Researcher", AIEnhancementScore: 0.9, JobGrowthRate: 0.35, AISkilledWage: 130000, MedianWage: 95000, EducationYearsRequired: 4, ExperienceYearsRequired: 3, CurrentJobPostings: 400, PreviousJobPostings: 300, RemoteWorkFactor: 0.7, LocalDemand: 1.1, NationalAvgDemand: 1.0},
		{Name: "AI Prompt Engineer", AIEnhancementScore: 0.7, JobGrowthRate: 0.4, AISkilledWage: 140000, MedianWage: 100000, EducationYearsRequired: 4, ExperienceYearsRequired: 1, CurrentJobPostings: 600, PreviousJobPostings: 450, RemoteWorkFactor: 0.8, LocalDemand: 1.3, NationalAvgDemand: 1.0},
		{Name: "Data Scientist", AIEnhancementScore: 0.95, JobGrowthRate: 0.3, AISkilledWage: 150000, MedianWage: 110000, EducationYearsRequired: 4, ExperienceYearsRequired: 3, CurrentJobPostings: 700, PreviousJobPostings: 500, RemoteWorkFactor: 0.5, LocalDemand: 1.4, NationalAvgDemand: 1.0},
		{Name: "Nursing Informatics", AIEnhancementScore: 0.75, JobGrowthRate: 0.2, AISkilledWage: 110000, MedianWage: 85000, EducationYearsRequired: 4, ExperienceYearsRequired: 2, CurrentJobPostings: 300, PreviousJobPostings: 250, RemoteWorkFactor: 0.4, LocalDemand: 1.0, NationalAvgDemand: 1.0},
		{Name: "Medical Coding", AIEnhancementScore: 0.6, JobGrowthRate: 0.15, AISkilledWage: 90000, MedianWage: 70000, EducationYearsRequired: 2, ExperienceYearsRequired: 0, CurrentJobPostings: 200, PreviousJobPostings: 180, RemoteWorkFactor: 0.3, LocalDemand: 0.9, NationalAvgDemand: 1.0},
	}
}

func defaultRequiredSkills() []scoring.RequiredSkill {
	const (
		analyst    = "Data Analyst with AI Skills"
		researcher = "AI UX Researcher"
	)
	return []scoring.RequiredSkill{
		{Occupation: analyst, Name: "Python", RequiredScore: 80, Importance: 0.7},
		{Occupation: analyst, Name: "Data Visualization", RequiredScore: 70, Importance: 0.8},
		{Occupation: analyst, Name: "Machine Learning", RequiredScore: 60, Importance: 0.5},
		{Occupation: researcher, Name: "User Research", RequiredScore: 90, Importance: 0.9},
		{Occupation: researcher, Name: "UI Design", RequiredScore: 80, Importance: 0.7},
		{Occupation: researcher, Name: "AI Ethics", RequiredScore: 75, Importance: 0.6},
	}
}

func defaultPathways() []scoring.Pathway {
	return []scoring.Pathway{
		{Name: "Prompt Engineering Fundamentals", Category: "AI-Fluency", ImpactAIFluency: 0.2, ImpactDomainExpertise: 0.05, ImpactAdaptive: 0.1},
		{Name: "AI for Financial Analysis", Category: "Domain+AI Integration", ImpactAIFluency: 0.1, ImpactDomainExpertise: 0.2, ImpactAdaptive: 0.05},
		{Name: "Human-AI Collaboration", Category: "Adaptive Capacity", ImpactAIFluency: 0.05, ImpactDomainExpertise: 0.1, ImpactAdaptive: 0.2},
	}
}

// DefaultDocument returns the built-in reference data.
func DefaultDocument() Document {
	return Document{
		Version:        documentVersion,
		Occupations:    defaultOccupations(),
		RequiredSkills: defaultRequiredSkills(),
		Pathways:       defaultPathways(),
	}
}

// SampleProfile is the demonstration profile shipped with the reference data.
func SampleProfile() scoring.Profile {
	return scoring.Profile{
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
		EducationLevel:              scoring.EducationMasters,
		YearsExperience:             5,
		PortfolioScore:              0.85,
		RecognitionScore:            0.7,
		CredentialsScore:            0.9,
		CognitiveFlexibility:        85,
		SocialEmotionalIntelligence: 90,
		StrategicCareerManagement:   75,
	}
}

// SampleSkills are the demonstration profile's skills.
func SampleSkills() []scoring.Skill {
	return []scoring.Skill{
		{Name: "Python", Score: 70},
		{Name: "Data Visualization", Score: 60},
		{Name: "Machine Learning", Score: 40},
	}
}

// SampleOccupation is the occupation selected by default.
const SampleOccupation = "Data Analyst with AI Skills"
