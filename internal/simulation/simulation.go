package simulation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Header forces a specific failure mode for one request, regardless of
// the configured failure rate. Used by resilience tests.
const Header = "X-Simulate-Failure"

// Mode identifies a simulated failure kind.
type Mode string

const (
	// ModeNone means the request proceeds normally.
	ModeNone Mode = ""
	// ModeNetwork drops the connection without a response.
	ModeNetwork Mode = "network"
	// ModeServer responds with a 500.
	ModeServer Mode = "server"
	// ModeTimeout responds with a 504 after the full latency window.
	ModeTimeout Mode = "timeout"
	// ModeNotFound responds with a 404. Never chosen at random; it only
	// applies via the header override.
	ModeNotFound Mode = "notfound"
)

// randomModes are the transient failures eligible for random injection.
var randomModes = []Mode{ModeNetwork, ModeServer, ModeTimeout}

// ParseMode validates a header value.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeNone, ModeNetwork, ModeServer, ModeTimeout, ModeNotFound:
		return Mode(s), true
	}
	return ModeNone, false
}

// Config controls injected latency and failures.
type Config struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64
	Seed        int64
}

// Injector adds artificial latency and transient failures to requests.
// Safe for concurrent use.
type Injector struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an injector. A zero seed means a time-derived seed.
func New(cfg Config) *Injector {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Injector{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Latency blocks for a random duration within the configured window,
// or until the context is done.
func (in *Injector) Latency(ctx context.Context) error {
	d := in.cfg.MinLatency
	if span := in.cfg.MaxLatency - in.cfg.MinLatency; span > 0 {
		in.mu.Lock()
		d += time.Duration(in.rng.Int63n(int64(span)))
		in.mu.Unlock()
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NextFailure rolls the dice: returns ModeNone most of the time and a
// random transient failure mode at the configured rate.
func (in *Injector) NextFailure() Mode {
	if in.cfg.FailureRate <= 0 {
		return ModeNone
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if in.rng.Float64() >= in.cfg.FailureRate {
		return ModeNone
	}
	return randomModes[in.rng.Intn(len(randomModes))]
}
