// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"code.hybscloud.com/freer"
)

// config is the read-only environment used by Reader tests.
type config struct {
	Name    string
	Retries int
}

// env is the execution environment marker shared by the test suite.
// It declares every capability the test programs request.
type env struct{}

func (env) CapTell(string) {}
func (env) CapState(int)   {}
func (env) CapAsk(config)  {}
func (env) CapTick()       {}

// intEnv declares only integer Writer output.
type intEnv struct{}

func (intEnv) CapTell(int) {}

// tick is a user-defined effect kind: it resumes with the updated count.
type tick struct{ freer.Phantom[int] }

// ticks is tick's capability marker.
type ticks interface{ CapTick() }

func tickOnce[Ctx ticks]() freer.Chain[Ctx, int] {
	return freer.Perform[Ctx](tick{})
}

// counterHandler interprets tick by incrementing an int state.
type counterHandler struct{}

func (counterHandler) Start() int { return 0 }

func (counterHandler) TryStep(state int, op freer.Operation, k freer.Continuation) (int, freer.Resumed, bool) {
	if _, ok := op.(tick); !ok {
		return state, nil, false
	}
	return state + 1, k(state + 1), true
}

func (counterHandler) Finish(state int) int { return state }

func newCounter() freer.Handler[int, int] { return counterHandler{} }
