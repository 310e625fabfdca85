package evaluations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/scoring"
	"airscore-backend/internal/shared/cache"
	"airscore-backend/internal/shared/metrics"
	"airscore-backend/internal/shared/telemetry"
	"airscore-backend/internal/shared/tracing"
	"airscore-backend/internal/shared/util"
)

const (
	defaultConcurrency = 4
	cacheKeyPrefix     = "evaluation:"
)

// Service evaluates profiles against the reference catalog.
type Service struct {
	Catalog     catalog.Catalog
	Cache       cache.Cache
	CacheTTL    time.Duration
	Concurrency int
	Now         func() time.Time
	NewID       func() string
}

// Evaluate scores a profile against a single occupation.
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (ev Evaluation, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "evaluations.Evaluate",
		trace.WithAttributes(attribute.String("occupation", in.Occupation)))
	defer func() { endSpan(span, err) }()

	v := &ValidationError{}
	params := in.validate(v, "")
	if err := v.errOrNil(); err != nil {
		return Evaluation{}, err
	}

	metrics.IncEvaluationStarted()
	started := time.Now()
	ev, err = s.evaluate(ctx, in, params)
	if err != nil {
		metrics.IncEvaluationFailed()
		return Evaluation{}, err
	}
	metrics.IncEvaluationCompleted()
	metrics.ObserveEvaluationDuration(time.Since(started))
	span.SetAttributes(attribute.Float64("air", ev.Result.Snapshot.AIR), attribute.Bool("cached", ev.Cached))
	return ev, nil
}

func (s *Service) evaluate(ctx context.Context, in EvaluateInput, params scoring.Params) (Evaluation, error) {
	occupation, err := s.Catalog.GetOccupation(ctx, in.Occupation)
	if err != nil {
		return Evaluation{}, fmt.Errorf("occupation %q: %w", strings.TrimSpace(in.Occupation), err)
	}
	required, err := s.Catalog.RequiredSkills(ctx, occupation.Name)
	if err != nil {
		return Evaluation{}, fmt.Errorf("required skills for %q: %w", occupation.Name, err)
	}

	input := scoring.Input{
		Profile:        in.Profile,
		Occupation:     occupation,
		Skills:         in.Skills,
		RequiredSkills: required,
		Params:         params,
	}

	key, keyErr := cacheKey(input)
	if keyErr == nil {
		if cached, ok := s.lookup(ctx, key); ok {
			return cached, nil
		}
	}

	ev := Evaluation{
		ID:        s.newID(),
		CreatedAt: s.now(),
		Result:    scoring.Evaluate(input),
	}
	if keyErr == nil {
		s.store(ctx, key, ev)
	}
	return ev, nil
}

// Simulate projects a pathway onto either the supplied snapshot or a fresh evaluation.
func (s *Service) Simulate(ctx context.Context, in SimulateInput) (sim Simulation, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "evaluations.Simulate",
		trace.WithAttributes(attribute.String("pathway", in.Pathway)))
	defer func() { endSpan(span, err) }()

	completion := in.completion()
	if err := validateSimulation(in, completion); err != nil {
		return Simulation{}, err
	}

	pathway, err := s.Catalog.GetPathway(ctx, in.Pathway)
	if err != nil {
		return Simulation{}, fmt.Errorf("pathway %q: %w", strings.TrimSpace(in.Pathway), err)
	}

	var (
		current      scoring.Snapshot
		hasAlignment bool
		alpha        = scoring.DefaultAlpha
		beta         = scoring.DefaultBeta
		evaluationID string
	)
	if in.Evaluation != nil {
		ev, err := s.Evaluate(ctx, *in.Evaluation)
		if err != nil {
			return Simulation{}, err
		}
		current, hasAlignment = ev.Result.Snapshot, true
		alpha, beta = ev.Result.Params.Alpha, ev.Result.Params.Beta
		evaluationID = ev.ID
	} else {
		current, hasAlignment = in.Current.snapshot()
		if in.Alpha != nil {
			alpha = *in.Alpha
		}
		if in.Beta != nil {
			beta = *in.Beta
		}
	}

	projected := scoring.Simulate(current, hasAlignment, pathway, completion, alpha, beta)
	metrics.IncSimulation()
	return Simulation{
		Pathway:      pathway,
		Completion:   completion,
		EvaluationID: evaluationID,
		Current:      current,
		Projected:    projected,
		Delta:        projected.Sub(current),
	}, nil
}

func validateSimulation(in SimulateInput, c scoring.Completion) error {
	v := &ValidationError{}
	if strings.TrimSpace(in.Pathway) == "" {
		v.add("pathway", "is required")
	}
	validateUnit(v, "completion", c.Completion)
	validateUnit(v, "mastery", c.Mastery)

	switch {
	case in.Current == nil && in.Evaluation == nil:
		v.add("current", "either current or evaluation is required")
	case in.Current != nil && in.Evaluation != nil:
		v.add("current", "current and evaluation are mutually exclusive")
	case in.Evaluation != nil:
		in.Evaluation.validate(v, "evaluation.")
		if in.Alpha != nil || in.Beta != nil {
			v.add("alpha", "use evaluation.params to tune an embedded evaluation")
		}
	default:
		validateUnit(v, "current.aiFluency", in.Current.AIFluency)
		validateUnit(v, "current.domainExpertise", in.Current.DomainExpertise)
		validateUnit(v, "current.adaptiveCapacity", in.Current.AdaptiveCapacity)
		if in.Alpha != nil {
			validateUnit(v, "alpha", *in.Alpha)
		}
		if in.Beta != nil {
			validateUnit(v, "beta", *in.Beta)
		}
	}
	return v.errOrNil()
}

// Compare scores one profile against every occupation and ranks the results by AI-R.
func (s *Service) Compare(ctx context.Context, in CompareInput) (out []Comparison, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "evaluations.Compare")
	defer func() { endSpan(span, err) }()

	v := &ValidationError{}
	validateSkills(v, "", in.Skills)
	params := in.Params.Resolve()
	validateParams(v, "", params)
	if err := v.errOrNil(); err != nil {
		return nil, err
	}

	occupations, err := s.Catalog.ListOccupations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list occupations: %w", err)
	}

	out = make([]Comparison, len(occupations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, occupation := range occupations {
		g.Go(func() error {
			required, err := s.Catalog.RequiredSkills(gctx, occupation.Name)
			if err != nil {
				return fmt.Errorf("required skills for %q: %w", occupation.Name, err)
			}
			res := scoring.Evaluate(scoring.Input{
				Profile:        in.Profile,
				Occupation:     occupation,
				Skills:         in.Skills,
				RequiredSkills: required,
				Params:         params,
			})
			out[i] = Comparison{Occupation: occupation.Name, Snapshot: res.Snapshot}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Snapshot.AIR != out[j].Snapshot.AIR {
			return out[i].Snapshot.AIR > out[j].Snapshot.AIR
		}
		return out[i].Occupation < out[j].Occupation
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	metrics.IncComparison()
	span.SetAttributes(attribute.Int("occupations", len(out)))
	return out, nil
}

func (s *Service) lookup(ctx context.Context, key string) (Evaluation, bool) {
	if s.Cache == nil {
		return Evaluation{}, false
	}
	raw, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		telemetry.Warn("evaluation.cache_get_failed", map[string]any{"error": err})
		return Evaluation{}, false
	}
	if !ok {
		metrics.IncCacheMiss()
		return Evaluation{}, false
	}
	var ev Evaluation
	if err := json.Unmarshal(raw, &ev); err != nil {
		telemetry.Warn("evaluation.cache_decode_failed", map[string]any{"error": err})
		return Evaluation{}, false
	}
	metrics.IncCacheHit()
	ev.Cached = true
	return ev, true
}

func (s *Service) store(ctx context.Context, key string, ev Evaluation) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil {
		telemetry.Warn("evaluation.cache_set_failed", map[string]any{"error": err})
	}
}

// cacheKey hashes the fully resolved input, so a catalog change yields a new key.
func cacheKey(in scoring.Input) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return cacheKeyPrefix + util.HashKey(raw), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return defaultConcurrency
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrValidation) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
