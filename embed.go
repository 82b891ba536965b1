// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Embedded pairs a program over some foreign operation algebra with the
// context value needed to run it, behind a uniform wrapper. The host algebra
// carries it as a single opaque case without compile-time knowledge of the
// foreign operation set; the consuming visitor resolves the context to an
// interpreter when the walk reaches the Embed step.
//
// Embeddings nest: an embedded program may itself contain further Embed
// steps of yet other algebras, each resolved independently in turn.
type Embedded interface {
	// Context returns the value the embedded program runs against.
	Context() any
	// Program returns the embedded program with its result type erased.
	// The concrete result is recovered by assertion at the Embed step's
	// resumption boundary.
	Program() kont.Expr[kont.Erased]
}

// embedded is the existential wrapper capturing the context type.
type embedded[J any] struct {
	ctx  J
	prog kont.Expr[kont.Erased]
}

func (e embedded[J]) Context() any { return e.ctx }

func (e embedded[J]) Program() kont.Expr[kont.Erased] { return e.prog }

// NewEmbedded wraps a program and its context as an Embedded value.
// The program is stored verbatim; nothing is interpreted here.
func NewEmbedded[J, A any](ctx J, p kont.Expr[A]) Embedded {
	return embedded[J]{ctx: ctx, prog: eraseExpr(p)}
}

// EmbedProgram builds a single-step host program carrying a foreign program
// and its context. The host visitor's Embed handler decides how to reach an
// interpreter for ctx.
func EmbedProgram[J, A any](ctx J, p kont.Expr[A]) kont.Eff[A] {
	return kont.Perform(Embed[A]{Target: NewEmbedded(ctx, p)})
}

// ExprEmbedProgram is the Expr-world counterpart of EmbedProgram.
func ExprEmbedProgram[J, A any](ctx J, p kont.Expr[A]) kont.Expr[A] {
	return kont.ExprPerform(Embed[A]{Target: NewEmbedded(ctx, p)})
}

// eraseExpr widens a program's result type to Erased.
func eraseExpr[A any](p kont.Expr[A]) kont.Expr[kont.Erased] {
	return kont.ExprMap(p, func(a A) kont.Erased { return a })
}
