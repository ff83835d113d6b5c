// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Chain is a lazy, data-only description of an effectful program producing a
// value of type A. It is a closed two-variant union:
//
//   - done: carries the program's result (constructed by [Pure])
//   - suspended: carries an [Effect] whose eventual result is the next chain
//     node (constructed by [Suspend] or [Perform])
//
// A nil effect pointer marks the done variant; there is no third variant.
//
// A chain is immutable: executing it never mutates any node, it only produces
// new nodes through continuations, so the same chain value may be run any
// number of times. Divergence caused by cyclic construction is the caller's
// responsibility and is not detected.
//
// Ctx is a compile-time marker naming the capabilities the program requires
// (see [Perform]); it carries no runtime data.
type Chain[Ctx, A any] struct {
	value  A
	effect *Effect[Ctx, Chain[Ctx, A]]
}

// Pure lifts a value into a finished chain.
func Pure[Ctx, A any](a A) Chain[Ctx, A] {
	return Chain[Ctx, A]{value: a}
}

// Suspend wraps an effect whose result is the next chain node into a
// suspended chain. The suspension is purely structural: resuming happens
// synchronously when a driver interprets the effect.
func Suspend[Ctx, A any](e Effect[Ctx, Chain[Ctx, A]]) Chain[Ctx, A] {
	return Chain[Ctx, A]{effect: &e}
}

// Done reports whether the chain is the terminal variant.
func (m Chain[Ctx, A]) Done() bool { return m.effect == nil }

// Value returns the chain's result. Meaningful only when Done reports true;
// on a suspended chain it returns the zero value.
func (m Chain[Ctx, A]) Value() A { return m.value }

// Bind sequences two chains (monadic bind): it runs m, then passes the result
// to f to obtain the rest of the program.
//
//	Bind(Pure(v), f)    = f(v)
//	Bind(Suspend(e), f) = Suspend(MapEffect(e, next → Bind(next, f)))
//
// Bind is the sole sequencing primitive; [Map] and [Then] are derived.
// It satisfies left identity, right identity, and associativity.
func Bind[Ctx, A, B any](m Chain[Ctx, A], f func(A) Chain[Ctx, B]) Chain[Ctx, B] {
	if m.effect == nil {
		return f(m.value)
	}
	e := *m.effect
	return Suspend(MapEffect(e, func(next Chain[Ctx, A]) Chain[Ctx, B] {
		return Bind(next, f)
	}))
}

// Map applies a pure function to the result of a chain.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but avoids
// the intermediate Pure closure, making it the preferred choice when the
// transformation is pure (does not produce effects).
func Map[Ctx, A, B any](m Chain[Ctx, A], f func(A) B) Chain[Ctx, B] {
	if m.effect == nil {
		return Pure[Ctx](f(m.value))
	}
	e := *m.effect
	return Suspend(MapEffect(e, func(next Chain[Ctx, A]) Chain[Ctx, B] {
		return Map(next, f)
	}))
}

// Then sequences two chains, discarding the first result.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[Ctx, A, B any](m Chain[Ctx, A], n Chain[Ctx, B]) Chain[Ctx, B] {
	if m.effect == nil {
		return n
	}
	e := *m.effect
	return Suspend(MapEffect(e, func(next Chain[Ctx, A]) Chain[Ctx, B] {
		return Then(next, n)
	}))
}
