package owner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ishandutta2007/Tops-of-Github/internal/github"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

const (
	// DefaultRateLimitBackoff is how long to wait after a rate-limit refusal.
	DefaultRateLimitBackoff = 60 * time.Second

	// DefaultRateLimitRetries is how many times one call site is retried
	// after a rate-limit refusal.
	DefaultRateLimitRetries = 1
)

// Directory is the account directory queried by a Resolver.
// *github.Client satisfies it.
type Directory interface {
	LookupUser(ctx context.Context, login string) (*github.Account, error)
	LookupOrg(ctx context.Context, login string) (*github.Account, error)
}

// Stats counts what a Resolver did during a run.
type Stats struct {
	// Resolved is the number of Resolve calls.
	Resolved int `json:"resolved"`
	// CacheHits is the number of Resolve calls answered from the cache.
	CacheHits int `json:"cache_hits"`
	// Lookups is the number of distinct identities sent to the directory.
	Lookups int `json:"lookups"`
	// Requests is the number of directory requests, retries included.
	Requests int `json:"requests"`
	// RateLimited is the number of rate-limit refusals seen.
	RateLimited int `json:"rate_limited"`
	// Failures is the number of identities that resolved to Unknown
	// because of an error rather than a definitive not-found.
	Failures int `json:"failures"`
	// Unknown is the number of identities that resolved to Unknown.
	Unknown int `json:"unknown"`
}

// Resolver turns owner identities into owner records.
type Resolver struct {
	dir     Directory
	cache   *Cache
	logger  *slog.Logger
	backoff time.Duration
	retries int
	sleep   func(ctx context.Context, d time.Duration) error
	stats   Stats
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for lookup warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRateLimitBackoff sets the wait before retrying a rate-limited call.
func WithRateLimitBackoff(d time.Duration) Option {
	return func(r *Resolver) {
		r.backoff = d
	}
}

// WithRateLimitRetries sets the retry bound per call site. Negative values
// are treated as zero.
func WithRateLimitRetries(n int) Option {
	return func(r *Resolver) {
		r.retries = max(n, 0)
	}
}

// WithSleep replaces the backoff wait, mainly for tests.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Resolver) {
		r.sleep = fn
	}
}

// NewResolver creates a Resolver backed by dir. A nil cache gets a fresh one.
func NewResolver(dir Directory, cache *Cache, opts ...Option) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	r := &Resolver{
		dir:     dir,
		cache:   cache,
		logger:  slog.Default(),
		backoff: DefaultRateLimitBackoff,
		retries: DefaultRateLimitRetries,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the owner record for identity. It never fails: any
// problem yields a record of kind OwnerUnknown, which is cached like any
// other outcome.
func (r *Resolver) Resolve(ctx context.Context, identity string) model.Owner {
	r.stats.Resolved++
	if o, ok := r.cache.Get(identity); ok {
		r.stats.CacheHits++
		return o
	}

	r.stats.Lookups++
	o := r.lookup(ctx, identity)
	if o.Kind == model.OwnerUnknown {
		r.stats.Unknown++
	}
	r.cache.Put(identity, o)
	return o
}

// Stats returns the counters accumulated so far.
func (r *Resolver) Stats() Stats {
	return r.stats
}

// Cache returns the cache backing the resolver.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

func (r *Resolver) lookup(ctx context.Context, identity string) model.Owner {
	acct, err := r.call(ctx, r.dir.LookupUser, identity)
	kind := model.OwnerUser
	if errors.Is(err, github.ErrNotFound) {
		acct, err = r.call(ctx, r.dir.LookupOrg, identity)
		kind = model.OwnerOrganization
	}

	switch {
	case errors.Is(err, github.ErrNotFound):
		r.logger.Debug("owner not found as user or organization", slog.String("owner", identity))
		return model.UnknownOwner(identity)
	case err != nil:
		r.stats.Failures++
		r.logger.Warn("owner lookup failed",
			slog.String("owner", identity),
			slog.String("error", err.Error()))
		return model.UnknownOwner(identity)
	}

	if parsed := model.ParseOwnerKind(acct.Type); parsed != model.OwnerUnknown {
		kind = parsed
	}
	o := model.Owner{Identity: identity, Kind: kind, Location: acct.Location}
	r.logger.Debug("owner resolved",
		slog.String("owner", identity),
		slog.String("kind", kind.String()),
		slog.String("location", o.LocationString()))
	return o
}

type lookupFunc func(ctx context.Context, login string) (*github.Account, error)

// call performs one directory call, retrying after a rate-limit refusal at
// most r.retries times.
func (r *Resolver) call(ctx context.Context, fn lookupFunc, identity string) (*github.Account, error) {
	for attempt := 0; ; attempt++ {
		r.stats.Requests++
		acct, err := fn(ctx, identity)
		if !errors.Is(err, github.ErrRateLimited) {
			return acct, err
		}
		r.stats.RateLimited++
		if attempt >= r.retries {
			return nil, err
		}
		r.logger.Warn("rate limit exceeded, waiting before retry",
			slog.String("owner", identity),
			slog.Duration("backoff", r.backoff))
		if err := r.sleep(ctx, r.backoff); err != nil {
			return nil, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
