package verification

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"truadboon/internal/bank"
	"truadboon/internal/blacklist"
	"truadboon/internal/foundation"
	"truadboon/internal/identifier"
	"truadboon/internal/verification/metrics"
	"truadboon/internal/verification/ports"
	"truadboon/internal/verifylog"
	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/sentinel"
	"truadboon/pkg/requestcontext"
)

const defaultLookupTimeout = 3 * time.Second

// Service resolves verdicts by gathering registry evidence in parallel and
// applying the precedence rules: blacklist beats foundation beats unknown.
type Service struct {
	foundations   ports.FoundationLookup
	blacklists    ports.BlacklistLookup
	logs          ports.LogAppender
	cache         *Cache
	metrics       *metrics.Metrics
	tracer        trace.Tracer
	lookupTimeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables the verdict cache.
func WithCache(cache *Cache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLookupTimeout bounds each registry query.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// NewService constructs the verification engine.
func NewService(foundations ports.FoundationLookup, blacklists ports.BlacklistLookup, logs ports.LogAppender, opts ...Option) *Service {
	s := &Service{
		foundations:   foundations,
		blacklists:    blacklists,
		logs:          logs,
		tracer:        otel.Tracer("truadboon/verification"),
		lookupTimeout: defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// evidence is the outcome of the parallel registry gathering. A nil pointer
// means no match; lookup errors surface through gather.
type evidence struct {
	foundation *foundation.Foundation
	blacklist  *blacklist.Entry
}

// Verify resolves a verdict for one identifier. Exactly one log entry is
// appended per resolution; append failures never change the verdict.
func (s *Service) Verify(ctx context.Context, in Input) (Result, error) {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "verification.verify")
	defer span.End()

	normalized := identifier.Normalize(in.AccountNumber)
	if normalized == "" {
		err := dErrors.New(dErrors.CodeValidation, "account number must include letters or digits")
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(attribute.String("identifier.normalized", normalized))

	if cached, ok := s.cache.Get(ctx, normalized); ok {
		s.metrics.IncrementCache(true)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		s.appendLog(ctx, cached)
		return cached, nil
	}
	s.metrics.IncrementCache(false)

	ev, err := s.gather(ctx, in.AccountNumber, normalized)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "registry lookup failed")
		return Result{}, dErrors.New(dErrors.CodeUnavailable, "registry lookup failed")
	}

	result := s.resolve(in, ev)
	span.SetAttributes(
		attribute.String("verdict.status", string(result.Status)),
		attribute.String("verdict.matched_type", string(result.MatchedType)),
	)

	s.cache.Set(ctx, normalized, result)
	s.appendLog(ctx, result)

	s.metrics.IncrementOutcome(string(result.Status), requestcontext.Source(ctx))
	s.metrics.ObserveVerifyLatency(time.Since(start))
	return result, nil
}

// gather queries both registries in parallel under a shared timeout. A miss
// is not an error; only infrastructure failures propagate.
func (s *Service) gather(ctx context.Context, raw, normalized string) (*evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	ev := &evidence{}

	g.Go(func() error {
		start := time.Now()
		f, err := s.foundations.FindByAccount(ctx, raw, normalized)
		s.metrics.ObserveLookupLatency("foundation", time.Since(start))
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return err
		}
		ev.foundation = &f
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		e, err := s.blacklists.FindByAccount(ctx, raw, normalized)
		s.metrics.ObserveLookupLatency("blacklist", time.Since(start))
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return err
		}
		ev.blacklist = &e
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ev, nil
}

// resolve applies the verdict precedence to gathered evidence.
func (s *Service) resolve(in Input, ev *evidence) Result {
	if ev.blacklist != nil {
		return dangerResult(*ev.blacklist)
	}
	if ev.foundation != nil && ev.foundation.Verified {
		return safeResult(*ev.foundation)
	}
	return warningResult(in)
}

func dangerResult(e blacklist.Entry) Result {
	name := e.AccountName
	if name == "" {
		name = blacklistedAccountName
	}
	message := e.Reason
	if message == "" {
		message = MessageDanger
	}
	return Result{
		Status:        StatusDanger,
		AccountName:   name,
		AccountNumber: e.AccountNumber,
		Bank:          bank.DisplayName(e.Bank),
		Message:       message,
		MatchedType:   MatchedBlacklist,
	}
}

func safeResult(f foundation.Foundation) Result {
	return Result{
		Status:        StatusSafe,
		AccountName:   f.DisplayAccountName(),
		AccountNumber: f.AccountNumber,
		Bank:          bank.DisplayName(f.Bank),
		Message:       MessageSafe,
		MatchedType:   MatchedFoundation,
	}
}

func warningResult(in Input) Result {
	name := in.AccountName
	if name == "" {
		name = unknownAccountName
	}
	return Result{
		Status:        StatusWarning,
		AccountName:   name,
		AccountNumber: in.AccountNumber,
		Bank:          bank.DisplayName(in.Bank),
		Message:       MessageWarning,
		MatchedType:   MatchedNone,
	}
}

// appendLog records the resolution. Errors are swallowed; the log pipeline
// has its own alerting and a verdict must never fail on it.
func (s *Service) appendLog(ctx context.Context, res Result) {
	_ = s.logs.Append(ctx, verifylog.Entry{
		AccountNumber: res.AccountNumber,
		AccountName:   res.AccountName,
		Bank:          res.Bank,
		Status:        string(res.Status),
		Source:        requestcontext.Source(ctx),
		UserID:        requestcontext.UserID(ctx),
		CreatedAt:     requestcontext.Now(ctx),
	})
}
