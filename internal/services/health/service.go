// Package health aggregates dependency readiness checks.
package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// CheckFunc reports a dependency failure.
type CheckFunc func(ctx context.Context) error

// Service encapsulates health-related checks.
type Service struct {
	checks map[string]CheckFunc
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{checks: map[string]CheckFunc{}}
}

// Register adds a named check; a nil check is ignored.
func (s *Service) Register(name string, check CheckFunc) {
	if check == nil {
		return
	}
	s.checks[name] = check
}

// Status runs every check and returns name -> ok.
func (s *Service) Status(ctx context.Context) map[string]bool {
	out := make(map[string]bool, len(s.checks))
	for name, check := range s.checks {
		out[name] = check(ctx) == nil
	}
	return out
}

// Ready runs every check in name order and joins the failures.
func (s *Service) Ready(ctx context.Context) error {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := s.checks[name](ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
