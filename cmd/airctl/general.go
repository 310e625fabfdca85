package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/evaluations"
	"airscore-backend/internal/shared/cache"
)

// profileFile is the on-disk shape of a scoring request.
type profileFile = evaluations.EvaluateInput

func loadProfile(path string) (in profileFile, err error) {
	if strings.TrimSpace(path) == "" {
		err = errors.New("--profile is required")
		return in, err
	}
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		err = errors.Wrap(err, "failed to open profile")
		return in, err
	}
	defer f.Close()

	in, err = decodeProfile(f)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile %s", path)
		return in, err
	}
	return in, err
}

func decodeProfile(r io.Reader) (in profileFile, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&in)
	if errors.Is(err, io.EOF) {
		err = errors.New("profile is empty")
	}
	return in, err
}

func loadCatalog() (result catalog.Catalog, err error) {
	if catalogFile == "" {
		result = catalog.NewDefaultCatalog()
		return result, err
	}
	var f *os.File
	f, err = os.Open(catalogFile)
	if err != nil {
		err = errors.Wrap(err, "failed to open catalog document")
		return result, err
	}
	defer f.Close()

	var doc catalog.Document
	doc, err = catalog.DecodeDocument(f)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse catalog document %s", catalogFile)
		return result, err
	}
	result = catalog.NewMemoryCatalog(doc)
	return result, err
}

func newService() (svc *evaluations.Service, err error) {
	var cat catalog.Catalog
	cat, err = loadCatalog()
	if err != nil {
		return svc, err
	}
	svc = &evaluations.Service{Catalog: cat, Cache: cache.Nop{}}
	return svc, err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func commandContext() context.Context {
	return context.Background()
}
