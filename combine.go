// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Handler composition. Combine pairs two handlers into one; repeated pairing
// composes arbitrarily many handlers into right-nested pairs. Composition is
// associative in structure but not commutative in trial order: the left
// handler is tried first, which only matters if two handlers (incorrectly)
// claim the same effect kind.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// combinedHandler interprets the union of two handlers' effect kinds over the
// pair of their states.
type combinedHandler[SA, SB, RA, RB any] struct {
	fst Handler[SA, RA]
	snd Handler[SB, RB]
}

// Start creates fresh state for both sub-handlers.
func (h combinedHandler[SA, SB, RA, RB]) Start() Pair[SA, SB] {
	return Pair[SA, SB]{Fst: h.fst.Start(), Snd: h.snd.Start()}
}

// TryStep tries the left sub-handler first, then the right on the original
// state and operation, short-circuiting on the first match. Only the matched
// sub-handler's state slot changes; if both miss, the miss propagates so that
// wider compositions can try further handlers.
func (h combinedHandler[SA, SB, RA, RB]) TryStep(state Pair[SA, SB], op Operation, k Continuation) (Pair[SA, SB], Resumed, bool) {
	if sa, next, ok := h.fst.TryStep(state.Fst, op, k); ok {
		return Pair[SA, SB]{Fst: sa, Snd: state.Snd}, next, true
	}
	if sb, next, ok := h.snd.TryStep(state.Snd, op, k); ok {
		return Pair[SA, SB]{Fst: state.Fst, Snd: sb}, next, true
	}
	return state, nil, false
}

// Finish finalizes both sub-handlers and pairs their results.
func (h combinedHandler[SA, SB, RA, RB]) Finish(state Pair[SA, SB]) Pair[RA, RB] {
	return Pair[RA, RB]{Fst: h.fst.Finish(state.Fst), Snd: h.snd.Finish(state.Snd)}
}

// Combine composes two handlers into one handler whose state is the pair of
// the sub-states. Chain Combine calls to compose more than two handlers.
func Combine[SA, SB, RA, RB any](fst Handler[SA, RA], snd Handler[SB, RB]) Handler[Pair[SA, SB], Pair[RA, RB]] {
	return combinedHandler[SA, SB, RA, RB]{fst: fst, snd: snd}
}
