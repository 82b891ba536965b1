// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/pgio"
)

func TestLoopCountsDown(t *testing.T) {
	conn := newFakeConn()
	program := pgio.Loop(3, func(n int) kont.Eff[kont.Either[int, string]] {
		if n == 0 {
			return kont.Pure(kont.Right[int]("done"))
		}
		return pgio.SetFetchSizeThen(n,
			kont.Pure(kont.Left[int, string](n-1)),
		)
	})
	got, err := pgio.Run(conn, program)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got != "done" {
		t.Fatalf("got %q, want done", got)
	}
	if len(conn.calls) != 3 {
		t.Fatalf("loop dispatched %d calls, want 3", len(conn.calls))
	}
}

func TestDelayChainStackSafety(t *testing.T) {
	// 100k sequential deferred steps interpret to completion without
	// unbounded call-stack growth.
	const steps = 100_000
	evaluated := 0
	program := kont.ExprReturn(struct{}{})
	for i := 0; i < steps; i++ {
		program = kont.ExprThen(program, pgio.ExprDelay(func() (struct{}, error) {
			evaluated++
			return struct{}{}, nil
		}))
	}
	if _, err := pgio.RunExpr(newFakeConn(), program); err != nil {
		t.Fatalf("RunExpr error: %v", err)
	}
	if evaluated != steps {
		t.Fatalf("evaluated %d steps, want %d", evaluated, steps)
	}
}

func TestExprLoopStackSafety(t *testing.T) {
	// Each iteration unfolds lazily inside the frame trampoline.
	const iterations = 100_000
	program := pgio.ExprLoop(0, func(n int) kont.Expr[kont.Either[int, int]] {
		return kont.ExprMap(
			pgio.ExprDelay(func() (int, error) { return n + 1, nil }),
			func(next int) kont.Either[int, int] {
				if next == iterations {
					return kont.Right[int](next)
				}
				return kont.Left[int, int](next)
			},
		)
	})
	got, err := pgio.RunExpr(newFakeConn(), program)
	if err != nil {
		t.Fatalf("RunExpr error: %v", err)
	}
	if got != iterations {
		t.Fatalf("got %d, want %d", got, iterations)
	}
}

func TestExprLoopWithOperations(t *testing.T) {
	conn := newFakeConn()
	program := pgio.ExprLoop(1, func(n int) kont.Expr[kont.Either[int, int]] {
		if n > 4 {
			return kont.ExprReturn(kont.Right[int](conn.fetchSize))
		}
		return pgio.ExprSetFetchSizeThen(n,
			kont.ExprReturn(kont.Left[int, int](n+1)),
		)
	})
	got, err := pgio.RunExpr(conn, program)
	if err != nil {
		t.Fatalf("RunExpr error: %v", err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if len(conn.calls) != 4 {
		t.Fatalf("dispatched %d calls, want 4", len(conn.calls))
	}
}
