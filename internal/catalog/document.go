package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"airscore-backend/internal/scoring"
	"airscore-backend/internal/shared/storage/object"
)

const documentVersion = 1

// DocumentContentType is stored alongside exported catalog documents.
const DocumentContentType = "application/yaml"

// Document is the portable form of the catalog.
type Document struct {
	Version        int                     `yaml:"version" json:"version"`
	Occupations    []scoring.Occupation    `yaml:"occupations" json:"occupations"`
	RequiredSkills []scoring.RequiredSkill `yaml:"requiredSkills" json:"requiredSkills"`
	Pathways       []scoring.Pathway       `yaml:"pathways" json:"pathways"`
}

// Validate checks names, reference integrity and required-skill ranges.
func (d Document) Validate() error {
	var errs []error
	if d.Version != documentVersion {
		errs = append(errs, fmt.Errorf("unsupported catalog version %d", d.Version))
	}
	occupations := make(map[string]struct{}, len(d.Occupations))
	for i, o := range d.Occupations {
		k := normalizeKey(o.Name)
		if k == "" {
			errs = append(errs, fmt.Errorf("occupations[%d]: name is required", i))
			continue
		}
		if _, dup := occupations[k]; dup {
			errs = append(errs, fmt.Errorf("occupations[%d]: duplicate name %q", i, o.Name))
		}
		occupations[k] = struct{}{}
	}
	for i, rs := range d.RequiredSkills {
		if strings.TrimSpace(rs.Name) == "" {
			errs = append(errs, fmt.Errorf("requiredSkills[%d]: skillName is required", i))
		}
		if _, ok := occupations[normalizeKey(rs.Occupation)]; !ok {
			errs = append(errs, fmt.Errorf("requiredSkills[%d]: unknown occupation %q", i, rs.Occupation))
		}
		if rs.RequiredScore < 0 || rs.RequiredScore > 100 {
			errs = append(errs, fmt.Errorf("requiredSkills[%d]: requiredSkillScore must be between 0 and 100, got %v", i, rs.RequiredScore))
		}
		if rs.Importance <= 0 {
			errs = append(errs, fmt.Errorf("requiredSkills[%d]: skillImportance must be positive, got %v", i, rs.Importance))
		}
	}
	pathways := make(map[string]struct{}, len(d.Pathways))
	for i, p := range d.Pathways {
		k := normalizeKey(p.Name)
		if k == "" {
			errs = append(errs, fmt.Errorf("pathways[%d]: name is required", i))
			continue
		}
		if _, dup := pathways[k]; dup {
			errs = append(errs, fmt.Errorf("pathways[%d]: duplicate name %q", i, p.Name))
		}
		pathways[k] = struct{}{}
	}
	return errors.Join(errs...)
}

// DecodeDocument parses and validates a YAML catalog document.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return doc, nil
}

// EncodeDocument writes doc as YAML.
func EncodeDocument(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// LoadDocument reads the catalog document stored under key.
func LoadDocument(ctx context.Context, store object.Store, key string) (Document, error) {
	rc, err := store.Open(ctx, key)
	if err != nil {
		return Document{}, err
	}
	defer rc.Close()
	return DecodeDocument(rc)
}

// SaveDocument writes doc under key.
func SaveDocument(ctx context.Context, store object.Store, key string, doc Document) (int64, error) {
	if err := doc.Validate(); err != nil {
		return 0, fmt.Errorf("invalid catalog: %w", err)
	}
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return 0, err
	}
	return store.Put(ctx, key, DocumentContentType, &buf)
}

// Export snapshots any Catalog into a Document.
func Export(ctx context.Context, c Catalog) (Document, error) {
	occupations, err := c.ListOccupations(ctx)
	if err != nil {
		return Document{}, err
	}
	pathways, err := c.ListPathways(ctx)
	if err != nil {
		return Document{}, err
	}
	doc := Document{
		Version:        documentVersion,
		Occupations:    occupations,
		RequiredSkills: []scoring.RequiredSkill{},
		Pathways:       pathways,
	}
	for _, o := range occupations {
		reqs, err := c.RequiredSkills(ctx, o.Name)
		if err != nil {
			return Document{}, err
		}
		doc.RequiredSkills = append(doc.RequiredSkills, reqs...)
	}
	return doc, nil
}
