// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Run interprets a Cont-world program under a fresh pass over v.
// Programs are pure data: interpreting the same reusable program again with
// another Run call walks the same immutable structure independently.
func Run[R any](v Visitor, p kont.Eff[R]) (R, error) {
	return Exec(NewInterp(v), p)
}

// RunExpr interprets an Expr-world program under a fresh pass over v.
func RunExpr[R any](v Visitor, p kont.Expr[R]) (R, error) {
	return ExecExpr(NewInterp(v), p)
}
