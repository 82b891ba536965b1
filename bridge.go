// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world program to Expr-world.
// The resulting Expr can be evaluated with ExecExpr or RunExpr,
// or stepped with Step and Advance.
func Reify[A any](p kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(p)
}

// Reflect converts an Expr-world program to Cont-world.
// The resulting Eff can be evaluated with Exec or Run.
func Reflect[A any](p kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(p)
}
