// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "fmt"

// unhandledEffect panics with a descriptive message for unmatched operations.
// Extracted as a noinline function so that the driver loop remains inlineable.
//
//go:noinline
func unhandledEffect(op Operation) {
	panic(fmt.Sprintf("freer: unhandled effect %T", op))
}

// Operation is the interface for effect operations in handler dispatch.
// All values passed as the op parameter to Handler.TryStep implement this interface.
type Operation any

// Resumed is the interface for values flowing through effect suspension and
// resumption. A handler resumes a suspended effect by passing the operation's
// result, as Resumed, to the effect's continuation.
type Resumed any

// Op is the F-bounded interface for effect operations.
// Each effect kind defines concrete types implementing Op with the appropriate
// result type parameter. The self-referencing constraint gives the compiler
// knowledge of both the concrete operation type and its result type.
//
// Example:
//
//	type Read[A any] struct{ freer.Phantom[A] }
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result marker.
// Embed Phantom[A] in an operation struct to satisfy [Op] without writing
// a manual OpResult method.
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// Effect describes one pending effectful operation of result type A,
// together with the continuation that consumes the operation's result.
//
// An Effect is immutable data and never executes anything itself;
// interpretation is wholly the handler's responsibility. The continuation is
// owned exclusively by the effect value that holds it — [MapEffect] allocates
// a new Effect rather than mutating the receiver.
//
// Ctx is the compile-time capability marker set of the program the effect
// belongs to. It has no runtime representation.
type Effect[Ctx, A any] struct {
	op     Operation
	resume func(Resumed) A
}

// Op returns the operation payload describing the requested side effect.
func (e Effect[Ctx, A]) Op() Operation { return e.op }

// Resume applies the effect's continuation to the operation's result.
// The value must have the operation's declared result type.
func (e Effect[Ctx, A]) Resume(v Resumed) A { return e.resume(v) }

// NewEffect creates an effect from an operation payload and its continuation.
// Concrete effect kinds normally lift operations with [Perform]; NewEffect is
// the primitive for kinds that need a custom base continuation.
func NewEffect[Ctx, A any](op Operation, resume func(Resumed) A) Effect[Ctx, A] {
	return Effect[Ctx, A]{op: op, resume: resume}
}

// MapEffect applies a pure function to the eventual result of an effect
// (functor map). The operation payload is preserved; only the continuation is
// rewrapped so that its output passes through f. Successive maps compose
// left-to-right without re-invoking already-composed continuations.
func MapEffect[Ctx, A, B any](e Effect[Ctx, A], f func(A) B) Effect[Ctx, B] {
	return Effect[Ctx, B]{
		op:     e.op,
		resume: func(v Resumed) B { return f(e.resume(v)) },
	}
}

// Perform lifts a single effect operation into a one-step chain: a suspension
// whose continuation wraps the operation's result with [Pure].
//
// Perform places no capability constraint on Ctx. Effect kind constructors
// built on Perform constrain Ctx by their capability marker (see [Tells],
// [Asks], [States]) so that programs requesting a capability only type-check
// against environments declaring it.
func Perform[Ctx any, O Op[O, A], A any](op O) Chain[Ctx, A] {
	e := Effect[Ctx, A]{
		op:     op,
		resume: func(v Resumed) A { return v.(A) },
	}
	return Suspend(MapEffect(e, Pure[Ctx, A]))
}
