package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"airscore-backend/internal/scoring"
)

// MemoryCatalog is an in-memory implementation of Catalog.
type MemoryCatalog struct {
	mu          sync.RWMutex
	occupations map[string]scoring.Occupation
	required    map[string][]scoring.RequiredSkill // normalized occupation -> requirements
	pathways    map[string]scoring.Pathway
}

// NewMemoryCatalog constructs a MemoryCatalog from a document.
func NewMemoryCatalog(doc Document) *MemoryCatalog {
	c := &MemoryCatalog{}
	c.Replace(doc)
	return c
}

// NewDefaultCatalog returns a MemoryCatalog seeded with the built-in reference data.
func NewDefaultCatalog() *MemoryCatalog {
	return NewMemoryCatalog(DefaultDocument())
}

// Replace swaps the catalog contents atomically.
func (c *MemoryCatalog) Replace(doc Document) {
	occupations := make(map[string]scoring.Occupation, len(doc.Occupations))
	for _, o := range doc.Occupations {
		o.Name = strings.TrimSpace(o.Name)
		occupations[normalizeKey(o.Name)] = o
	}
	required := make(map[string][]scoring.RequiredSkill)
	for _, rs := range doc.RequiredSkills {
		rs.Occupation = strings.TrimSpace(rs.Occupation)
		k := normalizeKey(rs.Occupation)
		required[k] = append(required[k], rs)
	}
	pathways := make(map[string]scoring.Pathway, len(doc.Pathways))
	for _, p := range doc.Pathways {
		p.Name = strings.TrimSpace(p.Name)
		pathways[normalizeKey(p.Name)] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.occupations = occupations
	c.required = required
	c.pathways = pathways
}

// ListOccupations returns all occupations ordered by name.
func (c *MemoryCatalog) ListOccupations(ctx context.Context) ([]scoring.Occupation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]scoring.Occupation, 0, len(c.occupations))
	for _, o := range c.occupations {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetOccupation returns an occupation by name.
func (c *MemoryCatalog) GetOccupation(ctx context.Context, name string) (scoring.Occupation, error) {
	if err := ctx.Err(); err != nil {
		return scoring.Occupation{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.occupations[normalizeKey(name)]
	if !ok {
		return scoring.Occupation{}, ErrNotFound
	}
	return o, nil
}

// RequiredSkills returns the requirements for an occupation. Unknown occupations have none.
func (c *MemoryCatalog) RequiredSkills(ctx context.Context, occupation string) ([]scoring.RequiredSkill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	src := c.required[normalizeKey(occupation)]
	out := make([]scoring.RequiredSkill, len(src))
	copy(out, src)
	return out, nil
}

// ListPathways returns all pathways ordered by name.
func (c *MemoryCatalog) ListPathways(ctx context.Context) ([]scoring.Pathway, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]scoring.Pathway, 0, len(c.pathways))
	for _, p := range c.pathways {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetPathway returns a pathway by name.
func (c *MemoryCatalog) GetPathway(ctx context.Context, name string) (scoring.Pathway, error) {
	if err := ctx.Err(); err != nil {
		return scoring.Pathway{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pathways[normalizeKey(name)]
	if !ok {
		return scoring.Pathway{}, ErrNotFound
	}
	return p, nil
}

var _ Catalog = (*MemoryCatalog)(nil)
