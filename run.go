// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Run drives a chain to completion against a handler: while the chain is
// suspended, the handler interprets one effect at a time, in chain order,
// threading its state through each step. When the chain reaches its terminal
// node, Run returns the program's value together with the handler's finalized
// state.
//
// Execution is single-threaded and strictly sequential; resuming happens
// synchronously inside the same loop iteration that detected the suspension.
//
// A TryStep miss at this level is fatal: the chain contains an effect no
// configured handler can interpret. The capability markers make this
// unreachable for programs whose marker set the environment satisfies, so it
// is treated as an unrecoverable defect (panic), never silently dropped.
func Run[Ctx, A, S, R any](m Chain[Ctx, A], h Handler[S, R]) (A, R) {
	state := h.Start()
	for m.effect != nil {
		e := m.effect
		k := func(v Resumed) Resumed { return e.resume(v) }
		var next Resumed
		var ok bool
		state, next, ok = h.TryStep(state, e.op, k)
		if !ok {
			unhandledEffect(e.op)
		}
		m = next.(Chain[Ctx, A])
	}
	return m.value, h.Finish(state)
}

// Eval runs a chain and returns only the program's value.
func Eval[Ctx, A, S, R any](m Chain[Ctx, A], h Handler[S, R]) A {
	a, _ := Run(m, h)
	return a
}

// Exec runs a chain and returns only the handler's finalized state.
func Exec[Ctx, A, S, R any](m Chain[Ctx, A], h Handler[S, R]) R {
	_, r := Run(m, h)
	return r
}
