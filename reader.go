// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Reader effect operations.
// Reader[E] provides read-only access to an environment.

// Asks is the capability marker for the Reader effect over E.
type Asks[E any] interface{ CapAsk(E) }

// Ask is the effect operation for reading the environment.
type Ask[E any] struct{}

func (Ask[E]) OpResult() E { panic("phantom") }

// AskReader builds a one-step chain performing Ask.
func AskReader[Ctx Asks[E], E any]() Chain[Ctx, E] {
	return Perform[Ctx](Ask[E]{})
}

// readerHandler interprets Ask[E] against a fixed environment.
// The environment is the handler state; Ask never changes it.
type readerHandler[E any] struct {
	env E
}

// Start returns the environment.
func (h readerHandler[E]) Start() E { return h.env }

// TryStep handles Ask[E]; everything else is not this handler's kind.
func (readerHandler[E]) TryStep(state E, op Operation, k Continuation) (E, Resumed, bool) {
	if _, ok := op.(Ask[E]); !ok {
		return state, nil, false
	}
	return state, k(state), true
}

// Finish returns the environment unchanged.
func (readerHandler[E]) Finish(state E) E { return state }

// ReaderHandler creates a handler for Reader effects with the given
// environment.
func ReaderHandler[E any](env E) Handler[E, E] {
	return readerHandler[E]{env: env}
}
