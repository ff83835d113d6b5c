// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "sync/atomic"

// Stepping boundary for external runtimes.
// Step provides shallow one-effect-at-a-time evaluation for callers that
// interpret operations themselves instead of supplying a [Handler] — unlike
// [Run], which drives a synchronous loop to completion.

// Suspension represents a chain suspended on an effect operation.
// It holds the pending operation and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a suspension.
type Suspension[Ctx, A any] struct {
	used   atomic.Uintptr
	op     Operation
	resume func(Resumed) Chain[Ctx, A]
}

// Op returns the effect operation that caused the suspension.
func (s *Suspension[Ctx, A]) Op() Operation { return s.op }

// Resume advances the chain with the given operation result.
// Returns either a completed value (with nil suspension) or the next
// suspension. Panics if the suspension has already been resumed or discarded.
func (s *Suspension[Ctx, A]) Resume(v Resumed) (A, *Suspension[Ctx, A]) {
	if s.used.Add(1) != 1 {
		panic("freer: suspension resumed twice")
	}
	return Step(s.resume(v))
}

// TryResume attempts to advance the chain.
// Returns (value, suspension, true) on success, or (zero, nil, false) if
// already used.
func (s *Suspension[Ctx, A]) TryResume(v Resumed) (A, *Suspension[Ctx, A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := Step(s.resume(v))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[Ctx, A]) Discard() {
	s.used.Store(1)
}

// Step inspects a chain: returns (value, nil) if the chain completed, or
// (zero, suspension) if it is pending on an effect operation.
//
// Example:
//
//	result, susp := Step(chain)
//	for susp != nil {
//	    v := interpret(susp.Op())
//	    result, susp = susp.Resume(v)
//	}
func Step[Ctx, A any](m Chain[Ctx, A]) (A, *Suspension[Ctx, A]) {
	if m.effect == nil {
		return m.value, nil
	}
	var zero A
	return zero, &Suspension[Ctx, A]{op: m.effect.op, resume: m.effect.resume}
}
