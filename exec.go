// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// interpHandler implements kont.Handler for one interpretation pass.
// Named operations double-dispatch to the visitor; control operations are
// realized by the pass. A dispatch error short-circuits the remaining walk
// as Left.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type interpHandler[A any] struct {
	in *Interp
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h interpHandler[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	v, err := h.in.dispatch(op)
	if err != nil {
		return kont.Left[error, A](err), false
	}
	return v, true
}

// dispatch realizes one operation. Dispatch order: connection → thunk →
// recover → await.
func (in *Interp) dispatch(op kont.Operation) (kont.Resumed, error) {
	if cop, ok := op.(connDispatcher); ok {
		return cop.DispatchConn(in.v)
	}
	if top, ok := op.(thunkDispatcher); ok {
		return top.DispatchThunk()
	}
	if rop, ok := op.(recoverDispatcher); ok {
		return rop.DispatchRecover(in.runErased)
	}
	if aop, ok := op.(awaitDispatcher); ok {
		return in.awaitOutcome(aop)
	}
	panic("pgio: unhandled effect in Interp")
}

// awaitOutcome registers the Await callback and blocks until the outcome
// arrives, backing off adaptively (iox.Backoff). A registration already made
// by a preceding Advance call on the same suspension is adopted instead of
// registering twice.
func (in *Interp) awaitOutcome(aop awaitDispatcher) (kont.Resumed, error) {
	mb := in.pending
	if mb == nil {
		mb = newMailbox()
		aop.DispatchAwait(mb)
	} else {
		in.pending = nil
	}
	var bo iox.Backoff
	for {
		c, err := mb.poll()
		if err == nil {
			if c.err != nil {
				return nil, c.err
			}
			return c.value, nil
		}
		bo.Wait()
	}
}

// runErased interprets an erased program under this pass.
// Used by Recover to run bodies and recovery programs.
func (in *Interp) runErased(p kont.Expr[kont.Erased]) (kont.Erased, error) {
	return ExecExpr(in, p)
}

// wrapRight is the success injection for error-capable runs.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func wrapRight[R any](r R) kont.Either[error, R] {
	return kont.Right[error, R](r)
}

// unwrapEither converts the internal Either vocabulary to a Go return pair.
func unwrapEither[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.GetRight()
	return r, nil
}

// Exec runs a Cont-world program under one interpretation pass.
// Blocks past Await boundaries via adaptive backoff, without spawning
// goroutines or creating channels. Returns the final value, or the first
// unrecovered dispatch error.
func Exec[R any](in *Interp, p kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](p, wrapRight[R])
	h := interpHandler[R]{in: in}
	return unwrapEither(kont.Handle(wrapped, h))
}

// ExecExpr runs an Expr-world program under one interpretation pass.
// Blocks past Await boundaries via adaptive backoff, without spawning
// goroutines or creating channels. Returns the final value, or the first
// unrecovered dispatch error.
func ExecExpr[R any](in *Interp, p kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(p, wrapRight[R])
	h := interpHandler[R]{in: in}
	return unwrapEither(kont.HandleExpr(wrapped, h))
}
