// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package freer provides algebraic effects as immutable data in Go: programs
// describe side-effecting operations as values, pluggable handlers interpret
// them, and a driver runs a program against a composition of handlers.
//
// The core type [Chain] is a lazy, data-only description of an effectful
// program — either a finished value or a suspended [Effect] whose continuation
// yields the next chain node. No effect ever executes anything; "executing" is
// wholly the handler's responsibility.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a value into a finished chain
//   - [Bind]: Sequence two chains
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Effect construction:
//
//   - [Perform]: Lift one effect operation into a one-step chain
//   - [Suspend]: Wrap an effect whose result is the next chain node
//   - [MapEffect]: Functor map over an effect's eventual result
//
// Execution:
//
//   - [Run]: Drive a chain to completion, returning (value, handler result)
//   - [Eval], [Exec]: Projections of Run
//
// # Handlers
//
// A [Handler] is a stateful interpreter for one effect kind: Start creates
// fresh per-run state, TryStep either interprets one operation (threading
// state, resuming the continuation) or reports a miss, and Finish turns final
// state into the handler's contribution to the run result. [Combine] pairs
// two handlers into one over the pair of their states; repeated pairing
// composes arbitrarily many. [HandlerFunc] adapts a stateless dispatch
// function.
//
// An effect no configured handler interprets is a configuration defect: the
// driver panics rather than dropping the effect.
//
// # Capability Markers
//
// Each effect kind declares a capability marker interface ([Tells], [Asks],
// [States]) and constrains the Ctx type parameter of its constructors by it.
// An environment type declares the capabilities it satisfies by implementing
// the phantom marker methods; a program generic over a constrained Ctx only
// instantiates against environments declaring every capability it uses, so
// unsupported effects are rejected at construction (compile) time.
//
//	type env struct{}
//	func (env) CapTell(string) {}
//	func (env) CapState(int)   {}
//
//	func program[Ctx interface {
//		freer.Tells[string]
//		freer.States[int]
//	}]() freer.Chain[Ctx, int] {
//		return freer.Then(freer.TellWriter[Ctx]("start"), freer.GetState[Ctx, int]())
//	}
//
//	result, final := freer.Run(program[env](), freer.Combine(
//		freer.WriterHandler[string](), freer.StateHandler(7)))
//	// result == 7, final.Fst == []string{"start"}, final.Snd == 7
//
// # Standard Effects
//
// Writer effect for accumulating output:
//
//   - [Tell]: Effect operation
//   - [TellWriter]: Chain constructor
//   - [WriterHandler]: Pure accumulating handler (chronological output)
//   - [LogHandler]: Real-I/O handler writing through a zap logger
//
// Reader effect for read-only environment:
//
//   - [Ask]: Effect operation
//   - [AskReader]: Chain constructor
//   - [ReaderHandler]: Handler over a fixed environment
//
// State effect for state threading:
//
//   - [Get], [Put], [Modify]: Effect operations
//   - [GetState], [PutState], [ModifyState]: Chain constructors
//   - [StateHandler]: Handler whose result is the final state
//
// # Stepping Boundary
//
// [Step] provides one-effect-at-a-time evaluation for external runtimes that
// interpret operations without a [Handler]. A [Suspension] carries the pending
// operation and a one-shot resumption handle.
//
// Affine semantics: each [Suspension] may be resumed at most once —
// [Suspension.Resume] panics on reuse, [Suspension.TryResume] is the
// non-panicking variant, [Suspension.Discard] drops without invoking.
//
// # Resource Safety
//
//   - [Bracket]: Acquire-use-release sequencing
//
// # Concurrency
//
// Execution is single-threaded and strictly sequential: one effect at a time,
// in chain order, with no scheduler, cancellation, or retries. Handler state
// is owned exclusively by the run that created it, so no locking exists
// anywhere in the package. Chains themselves are immutable and may be run any
// number of times.
package freer
