// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Continuation resumes a suspended effect with the operation's result and
// yields the next chain node in type-erased form. The concrete chain type is
// recovered by the driver via type assertion, mirroring the Resumed erasure
// boundary of [Effect].
type Continuation = func(Resumed) Resumed

// Handler is a stateful interpreter for one (or, when combined, several)
// effect kinds. S is the handler's private state type, R the type of its
// contribution to a run's final result.
//
// Lifecycle: Start is called once per [Run] invocation to create fresh state;
// state then threads strictly sequentially through successive TryStep calls;
// Finish consumes the final state exactly once. State is owned by the single
// run that created it — no locking, no sharing.
//
// TryStep attempts to interpret op. If op is not this handler's kind it must
// return (state, nil, false) without side effects or state mutation, so that
// wider compositions can try further handlers. If op is this handler's kind
// it computes the new state from (state, payload), invokes k with the
// operation's result to obtain the subsequent chain, and returns
// (newState, next, true). TryStep must be deterministic given (state, op);
// any real I/O it performs happens at most once per effect instance, exactly
// when the driver invokes it.
type Handler[S, R any] interface {
	Start() S
	TryStep(state S, op Operation, k Continuation) (S, Resumed, bool)
	Finish(state S) R
}

// handlerFunc wraps a dispatch function as a stateless Handler.
type handlerFunc struct {
	f func(op Operation, k Continuation) (Resumed, bool)
}

func (handlerFunc) Start() struct{} { return struct{}{} }

func (h handlerFunc) TryStep(state struct{}, op Operation, k Continuation) (struct{}, Resumed, bool) {
	next, ok := h.f(op, k)
	return state, next, ok
}

func (handlerFunc) Finish(struct{}) struct{} { return struct{}{} }

// HandlerFunc creates a stateless handler from a dispatch function — the
// degenerate form of [Handler] for interpreters that carry no state.
// The function receives each operation and the continuation, and returns
// (next, true) after resuming, or (nil, false) for operations it does not
// interpret.
//
// Handler constructors return the [Handler] interface type rather than a
// concrete type: the driver's S and R type parameters appear only in the
// handler argument, so they are inferable from an interface-typed value but
// not from a concrete implementation.
func HandlerFunc(f func(op Operation, k Continuation) (Resumed, bool)) Handler[struct{}, struct{}] {
	return handlerFunc{f: f}
}
