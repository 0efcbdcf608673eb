// Package urlbuilder constructs and mutates URL values in heterogeneous
// runtime contexts. Given a relative path and an optional request-like
// candidate (a literal base string, an outgoing or incoming *http.Request,
// an Endpoint descriptor, or any HostProvider), it resolves an absolute base
// origin and returns a URL value that can be mutated through a fluent chain.
package urlbuilder

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// FallbackBaseEnvVar is the environment variable consulted by
// WithFallbackFromEnv.
const FallbackBaseEnvVar = "URLBUILDER_FALLBACK_BASE"

// Builder holds the configuration consulted during base resolution: an
// optional ambient location, a default candidate used when Create is called
// without one, and a fallback base used when no resolution rule matches.
// A zero-value Builder is usable. Builder performs no internal locking;
// configuration writes are expected to be serialized by the caller, last
// write wins.
type Builder struct {
	location         *Location
	defaultCandidate any
	fallbackBase     string
	logger           *slog.Logger
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder) error

// New creates a Builder configured by the given options.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// WithLocation sets an ambient location that takes precedence over every
// candidate passed to Create.
func WithLocation(loc *Location) Option {
	return func(b *Builder) error {
		b.location = loc
		return nil
	}
}

// WithDefaultRequest sets the candidate used when Create is called without
// one.
func WithDefaultRequest(candidate any) Option {
	return func(b *Builder) error {
		b.defaultCandidate = candidate
		return nil
	}
}

// WithFallbackBase sets the base used when no resolution rule matches.
func WithFallbackBase(base string) Option {
	return func(b *Builder) error {
		b.fallbackBase = base
		return nil
	}
}

// WithFallbackFromEnv reads the fallback base from the URLBUILDER_FALLBACK_BASE
// environment variable. Any given .env files are checked first, in order; the
// first one that defines the variable wins, the process environment is the
// last resort. Missing files are skipped silently.
func WithFallbackFromEnv(envFiles ...string) Option {
	return func(b *Builder) error {
		for _, f := range envFiles {
			if _, err := os.Stat(f); err != nil {
				continue
			}
			vars, err := godotenv.Read(f)
			if err != nil {
				return fmt.Errorf("loading env file %s: %w", f, err)
			}
			if base, ok := vars[FallbackBaseEnvVar]; ok && base != "" {
				b.fallbackBase = base
				return nil
			}
		}
		if base := os.Getenv(FallbackBaseEnvVar); base != "" {
			b.fallbackBase = base
		}
		return nil
	}
}

// WithLogger sets the logger used for debug tracing of base resolution.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		b.logger = logger
		return nil
	}
}

// SetDefaultRequest stores the default candidate, replacing any previous one.
func (b *Builder) SetDefaultRequest(candidate any) {
	b.defaultCandidate = candidate
}

// SetFallbackBase stores the fallback base, replacing any previous one.
func (b *Builder) SetFallbackBase(base string) {
	b.fallbackBase = base
}

// FallbackBase returns the configured fallback base, or "" if unset.
func (b *Builder) FallbackBase() string {
	return b.fallbackBase
}

// SetLocation stores the ambient location, replacing any previous one.
func (b *Builder) SetLocation(loc *Location) {
	b.location = loc
}

func (b *Builder) log() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// Create resolves a base from the optional candidate (at most one is
// consulted) and constructs a URL value from path and base using standard
// URL-resolution semantics: an absolute path replaces the base's path
// entirely, a relative one is joined to it. Without a resolvable base the
// path must itself be an absolute URL, otherwise Create fails with
// ErrUnresolvableBase.
func (b *Builder) Create(path string, candidate ...any) (*URL, error) {
	var cand any
	if len(candidate) > 0 {
		cand = candidate[0]
	}

	base, ok := b.resolveBase(cand)
	if !ok {
		parsed, err := url.Parse(path)
		if err != nil || !parsed.IsAbs() {
			return nil, fmt.Errorf("creating URL from %q without a base: %w", path, ErrUnresolvableBase)
		}
		return newURL(parsed), nil
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return nil, fmt.Errorf("invalid base %q: %w", base, ErrUnresolvableBase)
	}
	target, err := baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %q against base %q: %w", path, base, err)
	}
	b.log().Debug("Create: built URL", "path", path, "base", base, "url", target.String())
	return newURL(target), nil
}

// From is an alias for Create.
func (b *Builder) From(path string, candidate ...any) (*URL, error) {
	return b.Create(path, candidate...)
}

// CreateAll builds one URL per path against a single resolved base. Paths
// that fail are skipped and their errors aggregated; the returned slice
// holds the URLs that succeeded, in input order.
func (b *Builder) CreateAll(paths []string, candidate ...any) ([]*URL, error) {
	var multiErr *multierror.Error
	urls := make([]*URL, 0, len(paths))
	for _, p := range paths {
		u, err := b.Create(p, candidate...)
		if err != nil {
			multiErr = multierror.Append(multiErr, fmt.Errorf("path %q: %w", p, err))
			continue
		}
		urls = append(urls, u)
	}
	return urls, multiErr.ErrorOrNil()
}
