// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "slices"

// Writer effect operations.
// Writer[W] provides accumulating output (logging, tracing).

// Tells is the capability marker for the Writer effect over W.
// An environment type declares the capability by implementing the marker
// method; it is never called.
type Tells[W any] interface{ CapTell(W) }

// Tell is the effect operation for appending output.
type Tell[W any] struct{ Value W }

func (Tell[W]) OpResult() struct{} { panic("phantom") }

// TellWriter builds a one-step chain performing Tell.
func TellWriter[Ctx Tells[W], W any](w W) Chain[Ctx, struct{}] {
	return Perform[Ctx](Tell[W]{Value: w})
}

// writerHandler interprets Tell[W] by pure accumulation.
// State holds the output newest-first (prepending keeps each step a fresh
// allocation, so prior states stay untouched); Finish restores chronological
// order.
type writerHandler[W any] struct{}

// Start returns empty output.
func (writerHandler[W]) Start() []W { return nil }

// TryStep handles Tell[W]; everything else is not this handler's kind.
func (writerHandler[W]) TryStep(state []W, op Operation, k Continuation) ([]W, Resumed, bool) {
	o, ok := op.(Tell[W])
	if !ok {
		return state, nil, false
	}
	return append([]W{o.Value}, state...), k(struct{}{}), true
}

// Finish reverses the newest-first accumulation into chronological order.
func (writerHandler[W]) Finish(state []W) []W {
	out := slices.Clone(state)
	slices.Reverse(out)
	return out
}

// WriterHandler creates a pure accumulating handler for Writer effects.
// The handler result is the output in chronological order.
func WriterHandler[W any]() Handler[[]W, []W] {
	return writerHandler[W]{}
}
