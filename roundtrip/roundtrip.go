/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package roundtrip checks that converting values from a source base to
// other bases and back reproduces the original digits exactly.
package roundtrip

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/capitalone/baseconv"
)

const (
	// DefaultFrom is the first value checked by a zero Config.
	DefaultFrom = 1

	// DefaultTo is the last value checked by a zero Config.
	DefaultTo = 99999

	// DefaultSourceBase is the base values are written in when unset.
	DefaultSourceBase = 10

	// DefaultMaxFailures bounds the failures reported in detail when unset.
	DefaultMaxFailures = 100

	chunkSize = 1024
)

// DefaultBases are the targets checked when Config.Bases is empty.
var DefaultBases = []int{2, 16, 8, 64}

// ErrMismatch is reported for every value that did not survive a round trip.
var ErrMismatch = errors.New("round trip mismatch")

// Config describes a verification run over the values From..To inclusive.
// From and To are used as given, so From 0 and To 0 checks only zero. The
// zero Config is the exception and checks DefaultFrom..DefaultTo.
type Config struct {
	From        uint64
	To          uint64
	SourceBase  int
	Bases       []int
	Workers     int
	MaxFailures int
}

// DefaultConfig returns the range, bases and limits used by a zero Config.
func DefaultConfig() Config {
	cfg := Config{
		From: DefaultFrom,
		To:   DefaultTo,
	}
	cfg.setDefaults()
	return cfg
}

func (c *Config) isZero() bool {
	return c.From == 0 && c.To == 0 && c.SourceBase == 0 && len(c.Bases) == 0 &&
		c.Workers == 0 && c.MaxFailures == 0
}

func (c *Config) setDefaults() {
	if c.SourceBase == 0 {
		c.SourceBase = DefaultSourceBase
	}
	if len(c.Bases) == 0 {
		c.Bases = append([]int(nil), DefaultBases...)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.MaxFailures <= 0 {
		c.MaxFailures = DefaultMaxFailures
	}
}

func (c *Config) validate() error {
	if c.From > c.To {
		return errors.Errorf("empty range: from %d is greater than to %d", c.From, c.To)
	}
	if c.SourceBase < baseconv.MinBase || c.SourceBase > baseconv.MaxBase {
		return errors.Wrapf(baseconv.ErrInvalidBase, "source base %d", c.SourceBase)
	}
	for _, b := range c.Bases {
		if b < baseconv.MinBase || b > baseconv.MaxBase {
			return errors.Wrapf(baseconv.ErrInvalidBase, "target base %d", b)
		}
	}
	return nil
}

// Failure records one value whose round trip through Base came back different.
type Failure struct {
	Value    uint64
	Base     int
	Original baseconv.Numeral
	Got      baseconv.Numeral
}

// Report summarizes a run. Failures holds at most Config.MaxFailures entries;
// FailureCount counts all of them.
type Report struct {
	Checked      uint64
	FailureCount uint64
	Failures     []Failure
}

// OK reports whether every checked value round-tripped.
func (r Report) OK() bool {
	return r.FailureCount == 0
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for progress and failure messages.
func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) {
		v.logger = l
	}
}

// Verifier runs round-trip checks. It is safe to call Run more than once.
type Verifier struct {
	cfg    Config
	logger *zap.Logger
}

// New returns a Verifier for cfg. Zero fields other than From and To are
// replaced by defaults, and a zero Config is replaced by DefaultConfig().
func New(cfg Config, opts ...Option) (*Verifier, error) {
	if cfg.isZero() {
		cfg = DefaultConfig()
	}
	cfg.Bases = append([]int(nil), cfg.Bases...)
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	v := &Verifier{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Config returns the effective configuration.
func (v *Verifier) Config() Config {
	return v.cfg
}

type run struct {
	*Verifier

	checked  atomic.Uint64
	failures atomic.Uint64

	mu       sync.Mutex
	recorded []Failure
	err      error
}

// Run checks every value in the configured range. The returned error
// combines one ErrMismatch per recorded failure, or carries the first
// conversion error or context cancellation that stopped the run.
func (v *Verifier) Run(ctx context.Context) (Report, error) {
	r := &run{Verifier: v}
	cfg := v.cfg

	v.logger.Info("round trip started",
		zap.Uint64("from", cfg.From),
		zap.Uint64("to", cfg.To),
		zap.Int("source_base", cfg.SourceBase),
		zap.Ints("bases", cfg.Bases),
		zap.Int("workers", cfg.Workers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for lo := cfg.From; ; lo += chunkSize {
		hi := lo + chunkSize - 1
		if hi > cfg.To || hi < lo {
			hi = cfg.To
		}
		lo := lo
		g.Go(func() error {
			return r.checkRange(ctx, lo, hi)
		})
		if hi == cfg.To {
			break
		}
	}
	waitErr := g.Wait()

	report := Report{
		Checked:      r.checked.Load(),
		FailureCount: r.failures.Load(),
		Failures:     r.recorded,
	}
	if waitErr != nil {
		v.logger.Error("round trip aborted", zap.Error(waitErr), zap.Uint64("checked", report.Checked))
		return report, waitErr
	}
	if report.OK() {
		v.logger.Info("round trip passed", zap.Uint64("checked", report.Checked))
	} else {
		v.logger.Warn("round trip failed", zap.Uint64("checked", report.Checked), zap.Uint64("failures", report.FailureCount))
	}
	return report, r.err
}

func (r *run) checkRange(ctx context.Context, lo, hi uint64) error {
	for x := lo; ; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.check(x); err != nil {
			return err
		}
		r.checked.Inc()
		if x == hi {
			break
		}
	}
	r.logger.Debug("range checked", zap.Uint64("lo", lo), zap.Uint64("hi", hi))
	return nil
}

func (r *run) check(x uint64) error {
	src, err := baseconv.FromUint64(x, r.cfg.SourceBase)
	if err != nil {
		return err
	}
	for _, b := range r.cfg.Bases {
		there, err := baseconv.Convert(src, b)
		if err != nil {
			return errors.Wrapf(err, "convert %d to base %d", x, b)
		}
		back, err := baseconv.Convert(there, r.cfg.SourceBase)
		if err != nil {
			return errors.Wrapf(err, "convert %d back from base %d", x, b)
		}
		if !baseconv.Equal(src, back) {
			r.fail(Failure{Value: x, Base: b, Original: src, Got: back})
		}
	}
	return nil
}

func (r *run) fail(f Failure) {
	n := r.failures.Inc()
	r.logger.Warn("round trip mismatch",
		zap.Uint64("value", f.Value),
		zap.Int("base", f.Base),
		zap.Stringer("original", f.Original),
		zap.Stringer("got", f.Got))
	if n > uint64(r.cfg.MaxFailures) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, f)
	r.err = multierr.Append(r.err, errors.Wrapf(ErrMismatch, "value %d through base %d: want %s, got %s", f.Value, f.Base, f.Original, f.Got))
}
