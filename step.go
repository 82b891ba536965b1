// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a program until the first operation suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](p kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(p)
}

// Advance dispatches the suspended operation under the pass.
//
// Await is non-blocking here: the first Advance on an Await suspension
// registers the callback; until the outcome arrives, Advance returns
// iox.ErrWouldBlock with the suspension unconsumed, to be retried by the
// driving loop. Every other dispatch error is a failure of the pass: the
// suspension is discarded and the error returned with a nil suspension.
//
// A Recover operation runs its body to completion internally, like kont's
// Catch; Await steps inside a recovery body block within this call.
func Advance[R any](in *Interp, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	op := susp.Op()
	if aop, ok := op.(awaitDispatcher); ok {
		if in.pending == nil {
			mb := newMailbox()
			aop.DispatchAwait(mb)
			in.pending = mb
		}
		c, err := in.pending.poll()
		if err != nil {
			var zero R
			return zero, susp, err
		}
		in.pending = nil
		if c.err != nil {
			susp.Discard()
			var zero R
			return zero, nil, c.err
		}
		result, next := susp.Resume(c.value)
		return result, next, nil
	}
	v, err := in.dispatch(op)
	if err != nil {
		susp.Discard()
		var zero R
		return zero, nil, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
