package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/hackathon/starter-api/internal/domain"
)

// ConnectTimeout bounds how long the probe waits to establish a connection.
// It overrides any connect_timeout carried in the DSN.
const ConnectTimeout = 3 * time.Second

const pingQuery = "SELECT 1"

// Conn is the subset of *pgx.Conn used by the probe.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// DialFunc opens exactly one connection for cfg.
type DialFunc func(ctx context.Context, cfg *pgx.ConnConfig) (Conn, error)

// Waiter gates dials; *ratelimiter.ProbeLimiter satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Hooks carries the metric callbacks injected by main.
// Both are optional.
type Hooks struct {
	OnOK     func(latency time.Duration)
	OnFailed func(kind string, latency time.Duration)
}

// Prober checks that the configured PostgreSQL database is reachable by
// opening a fresh connection and running a trivial query. It holds no
// connection between calls and never retries.
type Prober struct {
	dsn     string
	dial    DialFunc
	limiter Waiter
	hooks   Hooks
	logger  *zap.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithDialer replaces the pgx dialer, mainly so tests can observe dials.
func WithDialer(dial DialFunc) Option {
	return func(p *Prober) {
		if dial != nil {
			p.dial = dial
		}
	}
}

// WithLimiter makes every dial wait for the limiter first.
func WithLimiter(w Waiter) Option {
	return func(p *Prober) { p.limiter = w }
}

// WithHooks installs metric callbacks for probe outcomes.
func WithHooks(h Hooks) Option {
	return func(p *Prober) { p.hooks = h }
}

// NewProber returns a Prober for dsn. An empty dsn is valid: every probe
// then reports that DATABASE_URL is not set.
func NewProber(dsn string, logger *zap.Logger, opts ...Option) *Prober {
	p := &Prober{
		dsn:    dsn,
		dial:   dialPgx,
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if p.hooks.OnOK == nil {
		p.hooks.OnOK = func(time.Duration) {}
	}
	if p.hooks.OnFailed == nil {
		p.hooks.OnFailed = func(string, time.Duration) {}
	}
	return p
}

// Ping probes the DSN the Prober was built with.
func (p *Prober) Ping(ctx context.Context) domain.ProbeResult {
	return p.Probe(ctx, p.dsn)
}

// Probe runs one connectivity check against dsn. Failures never escape as
// errors: they are folded into the returned ProbeResult.
func (p *Prober) Probe(ctx context.Context, dsn string) domain.ProbeResult {
	if dsn == "" {
		p.logger.Debug("database probe skipped", zap.Error(domain.ErrDatabaseURLNotSet))
		return domain.ProbeFailed(domain.ErrDatabaseURLNotSet.Error())
	}

	start := time.Now()
	err := p.roundTrip(ctx, dsn)
	latency := time.Since(start)

	if err != nil {
		kind := ErrorKind(err)
		p.hooks.OnFailed(kind, latency)
		p.logger.Warn("database probe failed",
			zap.String("kind", kind),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return domain.ProbeError(kind, err)
	}

	p.hooks.OnOK(latency)
	p.logger.Debug("database probe ok", zap.Duration("latency", latency))
	return domain.ProbeOK()
}

// roundTrip returns the underlying error unwrapped so its text can be
// reported verbatim.
func (p *Prober) roundTrip(ctx context.Context, dsn string) (err error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return err
	}
	cfg.ConnectTimeout = ConnectTimeout

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	conn, err := p.dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var one int
	return conn.QueryRow(ctx, pingQuery).Scan(&one)
}

func dialPgx(ctx context.Context, cfg *pgx.ConnConfig) (Conn, error) {
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// ErrorKind names the category of a probe failure.
func ErrorKind(err error) string {
	var (
		parseErr *pgconn.ParseConfigError
		connErr  *pgconn.ConnectError
		pgErr    *pgconn.PgError
	)
	switch {
	case errors.As(err, &parseErr):
		return "ParseConfigError"
	case errors.Is(err, context.Canceled):
		return "Canceled"
	case pgconn.Timeout(err), errors.Is(err, context.DeadlineExceeded):
		return "Timeout"
	case errors.As(err, &connErr):
		return "ConnectError"
	case errors.As(err, &pgErr):
		return "PgError"
	case errors.Is(err, pgx.ErrNoRows):
		return "NoRows"
	}
	return typeName(err)
}

// typeName returns the bare type name of the innermost wrapped error.
func typeName(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	name := strings.TrimLeft(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
