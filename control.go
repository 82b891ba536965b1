// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Universal operations present alongside the named algebra:
// raw escape hatch, sub-program embedding, deferred computation,
// error recovery, and asynchronous suspension.

// Raw is the escape-hatch operation wrapping an arbitrary function of the
// live connection. It is the only operation allowed to close over such a
// function; every named operation is a structurally typed argument record.
type Raw[A any] struct {
	kont.Phantom[A]
	F func(conn any) (any, error)
}

// DispatchConn hands the closed-over function to the visitor, which applies
// it to its live connection.
func (o Raw[A]) DispatchConn(v Visitor) (kont.Resumed, error) {
	return v.Raw(o.F)
}

// WithConn builds a single-step program applying f to the live connection.
// Construction never invokes f; interpretation invokes it exactly once per
// pass. Panics at dispatch time if the visitor's connection is not a C.
func WithConn[C, A any](f func(conn C) (A, error)) kont.Eff[A] {
	return kont.Perform(Raw[A]{F: rawFunc[C, A](f)})
}

// ExprWithConn is the Expr-world counterpart of WithConn.
func ExprWithConn[C, A any](f func(conn C) (A, error)) kont.Expr[A] {
	return kont.ExprPerform(Raw[A]{F: rawFunc[C, A](f)})
}

// rawFunc erases the connection and result types of f, asserting the
// connection type at dispatch time.
func rawFunc[C, A any](f func(conn C) (A, error)) func(conn any) (any, error) {
	return func(conn any) (any, error) {
		c, ok := conn.(C)
		if !ok {
			panic("pgio: raw connection type mismatch")
		}
		return f(c)
	}
}

// Embed is the operation holding a foreign program plus the context value it
// runs against. The foreign program is stored verbatim; only the visitor's
// Embed handler expands it.
type Embed[A any] struct {
	kont.Phantom[A]
	Target Embedded
}

// DispatchConn hands the embedded program to the visitor for resolution.
func (o Embed[A]) DispatchConn(v Visitor) (kont.Resumed, error) {
	return v.Embed(o.Target)
}

// Thunk is the operation for a deferred, possibly side-effecting computation.
// The thunk is evaluated exactly once when the interpreter reaches this step.
type Thunk[A any] struct {
	kont.Phantom[A]
	F func() (any, error)
}

// DispatchThunk evaluates the deferred computation.
func (o Thunk[A]) DispatchThunk() (kont.Resumed, error) {
	return o.F()
}

// Delay builds a single-step program deferring f until interpretation.
func Delay[A any](f func() (A, error)) kont.Eff[A] {
	return kont.Perform(Thunk[A]{F: thunkFunc(f)})
}

// ExprDelay is the Expr-world counterpart of Delay.
func ExprDelay[A any](f func() (A, error)) kont.Expr[A] {
	return kont.ExprPerform(Thunk[A]{F: thunkFunc(f)})
}

// thunkFunc erases the result type of f.
func thunkFunc[A any](f func() (A, error)) func() (any, error) {
	return func() (any, error) {
		return f()
	}
}

// Suspend builds a program that, when interpreted, first evaluates f to
// obtain another program and then runs that program. Deferred Delay
// flattened via Bind.
func Suspend[A any](f func() kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(
		Delay(func() (kont.Eff[A], error) { return f(), nil }),
		func(p kont.Eff[A]) kont.Eff[A] { return p },
	)
}

// Recover is the operation for structural error recovery.
// The interpreter runs Body; if it fails, the Handler program for that error
// runs as a normal continuation and may perform further operations.
type Recover[A any] struct {
	kont.Phantom[A]
	Body    kont.Expr[kont.Erased]
	Handler func(err error) kont.Expr[kont.Erased]
}

// DispatchRecover runs the body under the current pass and, on failure,
// the recovery program for that error.
func (o Recover[A]) DispatchRecover(run func(kont.Expr[kont.Erased]) (kont.Erased, error)) (kont.Resumed, error) {
	v, err := run(o.Body)
	if err == nil {
		return v, nil
	}
	return run(o.Handler(err))
}

// Await is the operation for asynchronous suspension.
// Register is called exactly once per interpretation pass with a completion
// callback; invoking the callback with an outcome resumes the program.
// Deliveries after the first are ignored.
type Await[A any] struct {
	kont.Phantom[A]
	Register func(cb func(value any, err error))
}

// DispatchAwait registers the completion callback on the mailbox.
func (o Await[A]) DispatchAwait(mb *mailbox) {
	o.Register(mb.deliver)
}

// Async builds a single-step program suspending on callback registration.
// The interpreter resumes the continuation when the callback fires with a
// value, or fails the pass when it fires with an error.
func Async[A any](register func(cb func(value A, err error))) kont.Eff[A] {
	return kont.Perform(Await[A]{Register: awaitFunc(register)})
}

// ExprAsync is the Expr-world counterpart of Async.
func ExprAsync[A any](register func(cb func(value A, err error))) kont.Expr[A] {
	return kont.ExprPerform(Await[A]{Register: awaitFunc(register)})
}

// awaitFunc erases the result type of the registration callback.
func awaitFunc[A any](register func(cb func(value A, err error))) func(cb func(value any, err error)) {
	return func(cb func(value any, err error)) {
		register(func(value A, err error) {
			cb(value, err)
		})
	}
}
