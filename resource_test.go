// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/freer"
)

func TestBracketOrdering(t *testing.T) {
	acquire := freer.Then(freer.TellWriter[env]("open"), freer.Pure[env]("res"))
	release := func(r string) freer.Chain[env, struct{}] {
		return freer.TellWriter[env]("close " + r)
	}
	use := func(r string) freer.Chain[env, int] {
		return freer.Then(freer.TellWriter[env]("use "+r), freer.Pure[env](99))
	}

	result, logs := freer.Run(freer.Bracket(acquire, release, use), freer.WriterHandler[string]())
	require.Equal(t, 99, result)
	require.Equal(t, []string{"open", "use res", "close res"}, logs)
}

func TestBracketResultSurvivesRelease(t *testing.T) {
	acquire := freer.Pure[env](1)
	release := func(int) freer.Chain[env, struct{}] {
		return freer.TellWriter[env]("released")
	}
	use := func(n int) freer.Chain[env, int] {
		return freer.Pure[env](n + 41)
	}

	result, logs := freer.Run(freer.Bracket(acquire, release, use), freer.WriterHandler[string]())
	require.Equal(t, 42, result)
	require.Equal(t, []string{"released"}, logs)
}
