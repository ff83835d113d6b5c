// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// State effect operations.
// State[S] provides mutable state threading through chains.

// States is the capability marker for the State effect over S.
type States[S any] interface{ CapState(S) }

// Get is the effect operation for reading state.
type Get[S any] struct{}

func (Get[S]) OpResult() S { panic("phantom") }

// Put is the effect operation for writing state.
type Put[S any] struct{ Value S }

func (Put[S]) OpResult() struct{} { panic("phantom") }

// Modify is the effect operation for modifying state.
// The operation resumes with the new state.
type Modify[S any] struct{ F func(S) S }

func (Modify[S]) OpResult() S { panic("phantom") }

// GetState builds a one-step chain performing Get.
func GetState[Ctx States[S], S any]() Chain[Ctx, S] {
	return Perform[Ctx](Get[S]{})
}

// PutState builds a one-step chain performing Put.
func PutState[Ctx States[S], S any](s S) Chain[Ctx, struct{}] {
	return Perform[Ctx](Put[S]{Value: s})
}

// ModifyState builds a one-step chain performing Modify.
func ModifyState[Ctx States[S], S any](f func(S) S) Chain[Ctx, S] {
	return Perform[Ctx](Modify[S]{F: f})
}

// stateHandler interprets Get/Put/Modify over a threaded state value.
type stateHandler[S any] struct {
	initial S
}

// Start returns the initial state.
func (h stateHandler[S]) Start() S { return h.initial }

// TryStep handles Get[S], Put[S], and Modify[S]; everything else is not this
// handler's kind.
func (stateHandler[S]) TryStep(state S, op Operation, k Continuation) (S, Resumed, bool) {
	switch o := op.(type) {
	case Get[S]:
		return state, k(state), true
	case Put[S]:
		return o.Value, k(struct{}{}), true
	case Modify[S]:
		next := o.F(state)
		return next, k(next), true
	default:
		return state, nil, false
	}
}

// Finish returns the final state as the handler result.
func (stateHandler[S]) Finish(state S) S { return state }

// StateHandler creates a handler for State effects with the given initial
// state. The handler result is the final state.
func StateHandler[S any](initial S) Handler[S, S] {
	return stateHandler[S]{initial: initial}
}
