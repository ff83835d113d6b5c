// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "go.uber.org/zap"

// logHandler interprets Tell[string] by writing each message through a zap
// logger. The write is the handler author's explicit choice of real I/O and
// happens exactly once per effect instance, when the driver invokes TryStep.
// State counts emitted entries.
type logHandler struct {
	logger *zap.Logger
}

// Start returns a zero entry count.
func (*logHandler) Start() int { return 0 }

// TryStep handles Tell[string]; everything else is not this handler's kind.
func (h *logHandler) TryStep(state int, op Operation, k Continuation) (int, Resumed, bool) {
	o, ok := op.(Tell[string])
	if !ok {
		return state, nil, false
	}
	h.logger.Info(o.Value)
	return state + 1, k(struct{}{}), true
}

// Finish returns the number of entries written.
func (*logHandler) Finish(state int) int { return state }

// LogHandler creates a Writer-effect handler over string output that performs
// real I/O through the given zap logger instead of accumulating. The handler
// result is the number of entries written. A failure inside zap propagates to
// the caller of Run unchanged.
func LogHandler(logger *zap.Logger) Handler[int, int] {
	return &logHandler{logger: logger}
}
