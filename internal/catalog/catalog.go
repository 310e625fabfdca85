// Package catalog serves the read-only reference data the scoring model consumes:
// occupations, their required skills, and learning pathways.
package catalog

import (
	"context"
	"errors"
	"strings"

	"airscore-backend/internal/scoring"
)

var ErrNotFound = errors.New("not found")

// Catalog looks up reference data by key.
type Catalog interface {
	ListOccupations(ctx context.Context) ([]scoring.Occupation, error)
	GetOccupation(ctx context.Context, name string) (scoring.Occupation, error)
	RequiredSkills(ctx context.Context, occupation string) ([]scoring.RequiredSkill, error)
	ListPathways(ctx context.Context) ([]scoring.Pathway, error)
	GetPathway(ctx context.Context, name string) (scoring.Pathway, error)
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
