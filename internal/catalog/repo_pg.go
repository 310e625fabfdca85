package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"airscore-backend/internal/scoring"
)

// PGRepo implements Catalog using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const occupationColumns = `name, ai_enhancement_score, job_growth_rate, ai_skilled_wage, median_wage,
       education_years_required, experience_years_required, current_job_postings, previous_job_postings,
       remote_work_factor, local_demand, national_avg_demand`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOccupation(row rowScanner) (scoring.Occupation, error) {
	var o scoring.Occupation
	err := row.Scan(
		&o.Name,
		&o.AIEnhancementScore,
		&o.JobGrowthRate,
		&o.AISkilledWage,
		&o.MedianWage,
		&o.EducationYearsRequired,
		&o.ExperienceYearsRequired,
		&o.CurrentJobPostings,
		&o.PreviousJobPostings,
		&o.RemoteWorkFactor,
		&o.LocalDemand,
		&o.NationalAvgDemand,
	)
	return o, err
}

// ListOccupations returns all occupations ordered by name.
func (r *PGRepo) ListOccupations(ctx context.Context) ([]scoring.Occupation, error) {
	query := `SELECT ` + occupationColumns + ` FROM occupations ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []scoring.Occupation{}
	for rows.Next() {
		o, err := scanOccupation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetOccupation returns an occupation by name.
func (r *PGRepo) GetOccupation(ctx context.Context, name string) (scoring.Occupation, error) {
	query := `SELECT ` + occupationColumns + ` FROM occupations WHERE lower(name) = $1 LIMIT 1`
	o, err := scanOccupation(r.DB.QueryRowContext(ctx, query, normalizeKey(name)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scoring.Occupation{}, ErrNotFound
		}
		return scoring.Occupation{}, err
	}
	return o, nil
}

// RequiredSkills returns the requirements for an occupation.
func (r *PGRepo) RequiredSkills(ctx context.Context, occupation string) ([]scoring.RequiredSkill, error) {
	const query = `
SELECT occupation_name, skill_name, required_skill_score, skill_importance
FROM occupation_required_skills
WHERE lower(occupation_name) = $1
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, normalizeKey(occupation))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []scoring.RequiredSkill{}
	for rows.Next() {
		var rs scoring.RequiredSkill
		if err := rows.Scan(&rs.Occupation, &rs.Name, &rs.RequiredScore, &rs.Importance); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

// ListPathways returns all pathways ordered by name.
func (r *PGRepo) ListPathways(ctx context.Context) ([]scoring.Pathway, error) {
	const query = `
SELECT name, category, impact_ai_fluency, impact_domain_expertise, impact_adaptive_capacity
FROM learning_pathways
ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []scoring.Pathway{}
	for rows.Next() {
		var p scoring.Pathway
		var category sql.NullString
		if err := rows.Scan(&p.Name, &category, &p.ImpactAIFluency, &p.ImpactDomainExpertise, &p.ImpactAdaptive); err != nil {
			return nil, err
		}
		p.Category = category.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPathway returns a pathway by name.
func (r *PGRepo) GetPathway(ctx context.Context, name string) (scoring.Pathway, error) {
	const query = `
SELECT name, category, impact_ai_fluency, impact_domain_expertise, impact_adaptive_capacity
FROM learning_pathways
WHERE lower(name) = $1
LIMIT 1`
	var p scoring.Pathway
	var category sql.NullString
	err := r.DB.QueryRowContext(ctx, query, normalizeKey(name)).
		Scan(&p.Name, &category, &p.ImpactAIFluency, &p.ImpactDomainExpertise, &p.ImpactAdaptive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scoring.Pathway{}, ErrNotFound
		}
		return scoring.Pathway{}, err
	}
	p.Category = category.String
	return p, nil
}

// Import replaces the stored reference data with doc in a single transaction.
func (r *PGRepo) Import(ctx context.Context, doc Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM occupation_required_skills`,
		`DELETE FROM learning_pathways`,
		`DELETE FROM occupations`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	const insertOccupation = `
INSERT INTO occupations (
	name, ai_enhancement_score, job_growth_rate, ai_skilled_wage, median_wage,
	education_years_required, experience_years_required, current_job_postings, previous_job_postings,
	remote_work_factor, local_demand, national_avg_demand
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, o := range doc.Occupations {
		if _, err := tx.ExecContext(ctx, insertOccupation,
			strings.TrimSpace(o.Name),
			o.AIEnhancementScore,
			o.JobGrowthRate,
			o.AISkilledWage,
			o.MedianWage,
			o.EducationYearsRequired,
			o.ExperienceYearsRequired,
			o.CurrentJobPostings,
			o.PreviousJobPostings,
			o.RemoteWorkFactor,
			o.LocalDemand,
			o.NationalAvgDemand,
		); err != nil {
			return fmt.Errorf("insert occupation %q: %w", o.Name, err)
		}
	}

	const insertRequirement = `
INSERT INTO occupation_required_skills (occupation_name, skill_name, required_skill_score, skill_importance)
VALUES ($1, $2, $3, $4)`
	for _, rs := range doc.RequiredSkills {
		if _, err := tx.ExecContext(ctx, insertRequirement,
			strings.TrimSpace(rs.Occupation), rs.Name, rs.RequiredScore, rs.Importance,
		); err != nil {
			return fmt.Errorf("insert required skill %q: %w", rs.Name, err)
		}
	}

	const insertPathway = `
INSERT INTO learning_pathways (name, category, impact_ai_fluency, impact_domain_expertise, impact_adaptive_capacity)
VALUES ($1, $2, $3, $4, $5)`
	for _, p := range doc.Pathways {
		if _, err := tx.ExecContext(ctx, insertPathway,
			strings.TrimSpace(p.Name), p.Category, p.ImpactAIFluency, p.ImpactDomainExpertise, p.ImpactAdaptive,
		); err != nil {
			return fmt.Errorf("insert pathway %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

var _ Catalog = (*PGRepo)(nil)
