// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Resource sequencing sugar over [Bind].

// Bracket sequences resource acquisition, use, and release:
// acquire → use → release, returning use's result after release completes.
//
// The chain is plain data with no error channel, so release runs when use's
// chain completes. A handler that fails mid-use aborts the whole run before
// release is reached; recovery policy belongs to the handler or caller.
func Bracket[Ctx, R, A any](
	acquire Chain[Ctx, R],
	release func(R) Chain[Ctx, struct{}],
	use func(R) Chain[Ctx, A],
) Chain[Ctx, A] {
	return Bind(acquire, func(resource R) Chain[Ctx, A] {
		return Bind(use(resource), func(a A) Chain[Ctx, A] {
			return Map(release(resource), func(_ struct{}) A { return a })
		})
	})
}
