// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// RaiseError builds a program that fails with err when interpreted.
// The failure is deferred inside a Thunk rather than modeled as an eager
// failed state: a program merely containing an unrun RaiseError step is
// indistinguishable from any other deferred computation until interpreted.
func RaiseError[A any](err error) kont.Eff[A] {
	return Delay(raiseThunk[A](err))
}

// ExprRaiseError is the Expr-world counterpart of RaiseError.
func ExprRaiseError[A any](err error) kont.Expr[A] {
	return ExprDelay(raiseThunk[A](err))
}

// raiseThunk defers the failure until the thunk is evaluated.
func raiseThunk[A any](err error) func() (A, error) {
	return func() (A, error) {
		var zero A
		return zero, err
	}
}

// HandleErrorWith intercepts a failure of body: body runs first, and if it
// fails, h(err) runs instead, as a normal continuation. Recovery programs
// are full programs and may perform further operations. Steps of body that
// already executed against the live connection are not rolled back.
//
// The wrapped programs evaluate affinely: a program containing a
// HandleErrorWith step is good for one interpretation pass.
func HandleErrorWith[A any](body kont.Eff[A], h func(err error) kont.Eff[A]) kont.Eff[A] {
	return kont.Perform(Recover[A]{
		Body: eraseExpr(kont.Reify(body)),
		Handler: func(err error) kont.Expr[kont.Erased] {
			return eraseExpr(kont.Reify(h(err)))
		},
	})
}

// ExprHandleErrorWith is the Expr-world counterpart of HandleErrorWith.
func ExprHandleErrorWith[A any](body kont.Expr[A], h func(err error) kont.Expr[A]) kont.Expr[A] {
	return kont.ExprPerform(Recover[A]{
		Body: eraseExpr(body),
		Handler: func(err error) kont.Expr[kont.Erased] {
			return eraseExpr(h(err))
		},
	})
}

// OnError runs cleanup only if body fails, then re-raises the original
// failure. The cleanup result is discarded.
func OnError[A any](body kont.Eff[A], cleanup func(err error) kont.Eff[struct{}]) kont.Eff[A] {
	return HandleErrorWith(body, func(err error) kont.Eff[A] {
		return kont.Bind(cleanup(err), func(struct{}) kont.Eff[A] {
			return RaiseError[A](err)
		})
	})
}
