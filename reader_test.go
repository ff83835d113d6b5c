// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/freer"
)

func TestReaderAsk(t *testing.T) {
	m := freer.Bind(freer.AskReader[env, config](), func(c config) freer.Chain[env, string] {
		return freer.Pure[env](c.Name)
	})

	result, final := freer.Run(m, freer.ReaderHandler(config{Name: "primary", Retries: 3}))
	require.Equal(t, "primary", result)
	require.Equal(t, config{Name: "primary", Retries: 3}, final, "Ask must not change the environment")
}

func TestReaderAskTwiceSameEnvironment(t *testing.T) {
	m := freer.Bind(freer.AskReader[env, config](), func(a config) freer.Chain[env, bool] {
		return freer.Bind(freer.AskReader[env, config](), func(b config) freer.Chain[env, bool] {
			return freer.Pure[env](a == b)
		})
	})

	same := freer.Eval(m, freer.ReaderHandler(config{Name: "n", Retries: 1}))
	require.True(t, same)
}

func TestReaderCombinedWithWriter(t *testing.T) {
	m := freer.Bind(freer.AskReader[env, config](), func(c config) freer.Chain[env, int] {
		return freer.Then(freer.TellWriter[env]("read "+c.Name), freer.Pure[env](c.Retries))
	})

	h := freer.Combine(freer.ReaderHandler(config{Name: "db", Retries: 7}), freer.WriterHandler[string]())
	result, final := freer.Run(m, h)
	require.Equal(t, 7, result)
	require.Equal(t, []string{"read db"}, final.Snd)
}
