// Package faults holds the injectable imperfection policy of the simulated
// API: bounded random latency on every call and a configurable failure rate on
// mutations. Tests swap in a deterministic policy.
package faults

import (
	"math/rand"
	"sync"
	"time"
)

type Policy interface {
	// Latency returns the artificial delay to apply to the current call.
	Latency() time.Duration
	// FailMutation reports whether the current mutating call must fail with a
	// server error.
	FailMutation() bool
}

// New builds the production policy: latency uniform in [min,max], mutation
// failures with the given probability (0 disables).
func New(latencyMin, latencyMax time.Duration, errorRate float64) Policy {
	if latencyMax < latencyMin {
		latencyMax = latencyMin
	}
	return &randomized{
		min:  latencyMin,
		max:  latencyMax,
		rate: errorRate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type randomized struct {
	mu   sync.Mutex
	min  time.Duration
	max  time.Duration
	rate float64
	rng  *rand.Rand
}

func (p *randomized) Latency() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.max <= p.min {
		return p.min
	}
	return p.min + time.Duration(p.rng.Int63n(int64(p.max-p.min)))
}

func (p *randomized) FailMutation() bool {
	if p.rate <= 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < p.rate
}

// Disabled returns a no-latency, no-failure policy.
func Disabled() Policy {
	return scripted{}
}

// Script returns a policy whose mutation outcomes follow fails in call order;
// once the script runs out, mutations succeed. No latency.
func Script(fails ...bool) Policy {
	return &scriptedSeq{fails: fails}
}

type scripted struct{}

func (scripted) Latency() time.Duration { return 0 }
func (scripted) FailMutation() bool     { return false }

type scriptedSeq struct {
	mu    sync.Mutex
	fails []bool
	next  int
}

func (p *scriptedSeq) Latency() time.Duration { return 0 }

func (p *scriptedSeq) FailMutation() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.fails) {
		return false
	}
	fail := p.fails[p.next]
	p.next++
	return fail
}
