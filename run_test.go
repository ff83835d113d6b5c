// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/freer"
)

func TestRunPureSkipsDispatch(t *testing.T) {
	steps := 0
	probe := freer.HandlerFunc(func(op freer.Operation, k freer.Continuation) (freer.Resumed, bool) {
		steps++
		return k(struct{}{}), true
	})

	v, _ := freer.Run(freer.Pure[env](42), probe)
	require.Equal(t, 42, v)
	require.Equal(t, 0, steps, "a finished chain must never reach TryStep")
}

func TestRunPureFinalizesStartState(t *testing.T) {
	v, final := freer.Run(freer.Pure[env](42), freer.StateHandler(7))
	require.Equal(t, 42, v)
	require.Equal(t, 7, final)
}

func TestRunThreadsStateSequentially(t *testing.T) {
	m := freer.Bind(tickOnce[env](), func(int) freer.Chain[env, int] {
		return freer.Bind(tickOnce[env](), func(int) freer.Chain[env, int] {
			return tickOnce[env]()
		})
	})
	v, count := freer.Run(m, newCounter())
	require.Equal(t, 3, v)
	require.Equal(t, 3, count)
}

func TestRunUnhandledEffectPanics(t *testing.T) {
	m := freer.Then(tickOnce[env](), freer.Pure[env](1))
	require.PanicsWithValue(t, "freer: unhandled effect freer_test.tick", func() {
		freer.Run(m, freer.WriterHandler[string]())
	})
}

func TestRunNeverDropsUnhandledEffect(t *testing.T) {
	// The defect fires on the first uninterpretable effect, even when the
	// rest of the chain could complete without it.
	m := freer.Then(freer.TellWriter[env]("ok"), freer.Then(tickOnce[env](), freer.Pure[env](1)))
	require.Panics(t, func() {
		freer.Run(m, freer.WriterHandler[string]())
	})
}

func TestEvalReturnsValueOnly(t *testing.T) {
	v := freer.Eval(freer.Then(tickOnce[env](), freer.Pure[env]("v")), newCounter())
	require.Equal(t, "v", v)
}

func TestExecReturnsHandlerResultOnly(t *testing.T) {
	count := freer.Exec(freer.Then(tickOnce[env](), freer.Pure[env]("v")), newCounter())
	require.Equal(t, 1, count)
}

func TestHandlerFuncInterpretsEverything(t *testing.T) {
	// The degenerate always-matching handler: stateless interpretation of
	// arbitrary operations.
	h := freer.HandlerFunc(func(op freer.Operation, k freer.Continuation) (freer.Resumed, bool) {
		switch op.(type) {
		case tick:
			return k(99), true
		default:
			return nil, false
		}
	})
	v, _ := freer.Run(tickOnce[env](), h)
	require.Equal(t, 99, v)
}
