// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Expr-world fused constructors built on pooled single-use frames: programs
// constructed here are good for exactly one evaluation (affine), per the
// kont frame-pool contract. Use the Cont-world constructors for programs
// that must be interpreted more than once.

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame         kont.Frame     = kont.ReturnFrame{}
	exprGetBackendPID       kont.Operation = GetBackendPID{}
	exprCancelQuery         kont.Operation = CancelQuery{}
	exprGetAutosave         kont.Operation = GetAutosave{}
	exprGetFetchSize        kont.Operation = GetDefaultFetchSize{}
	exprGetPrepareThreshold kont.Operation = GetPrepareThreshold{}
	exprGetNotifications    kont.Operation = GetNotifications{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// exprPerformThen suspends on op and then continues with next.
func exprPerformThen[B any](op kont.Operation, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// exprPerformBind suspends on op and passes the resume value to f.
func exprPerformBind[A, B any](op kont.Operation, f func(A) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		result := f(a.(A))
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprBackendPIDBind reads the backend process id and passes it to f.
// Fuses ExprPerform(GetBackendPID{}) + ExprBind.
func ExprBackendPIDBind[B any](f func(pid int) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprGetBackendPID, f)
}

// ExprCancelQueryThen cancels the in-flight query and continues with next.
// Fuses ExprPerform(CancelQuery{}) + ExprThen.
func ExprCancelQueryThen[B any](next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(exprCancelQuery, next)
}

// ExprAddDataTypeThen registers a data type mapping and continues with next.
// Fuses ExprPerform(AddDataType{...}) + ExprThen.
func ExprAddDataTypeThen[B any](name, kind string, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(AddDataType{Name: name, Kind: kind}, next)
}

// ExprAutosaveBind reads the autosave policy and passes it to f.
// Fuses ExprPerform(GetAutosave{}) + ExprBind.
func ExprAutosaveBind[B any](f func(mode Autosave) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprGetAutosave, f)
}

// ExprSetAutosaveThen sets the autosave policy and continues with next.
// Fuses ExprPerform(SetAutosave{...}) + ExprThen.
func ExprSetAutosaveThen[B any](mode Autosave, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(SetAutosave{Mode: mode}, next)
}

// ExprFetchSizeBind reads the default fetch size and passes it to f.
// Fuses ExprPerform(GetDefaultFetchSize{}) + ExprBind.
func ExprFetchSizeBind[B any](f func(rows int) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprGetFetchSize, f)
}

// ExprSetFetchSizeThen sets the default fetch size and continues with next.
// Fuses ExprPerform(SetDefaultFetchSize{...}) + ExprThen.
func ExprSetFetchSizeThen[B any](rows int, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(SetDefaultFetchSize{Rows: rows}, next)
}

// ExprPrepareThresholdBind reads the prepare threshold and passes it to f.
// Fuses ExprPerform(GetPrepareThreshold{}) + ExprBind.
func ExprPrepareThresholdBind[B any](f func(calls int) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprGetPrepareThreshold, f)
}

// ExprSetPrepareThresholdThen sets the prepare threshold and continues with
// next. Fuses ExprPerform(SetPrepareThreshold{...}) + ExprThen.
func ExprSetPrepareThresholdThen[B any](calls int, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(SetPrepareThreshold{Calls: calls}, next)
}

// ExprEscapeIdentifierBind quotes an identifier and passes the result to f.
// Fuses ExprPerform(EscapeIdentifier{...}) + ExprBind.
func ExprEscapeIdentifierBind[B any](name string, f func(quoted string) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(EscapeIdentifier{Name: name}, f)
}

// ExprEscapeLiteralBind quotes a literal value and passes the result to f.
// Fuses ExprPerform(EscapeLiteral{...}) + ExprBind.
func ExprEscapeLiteralBind[B any](value string, f func(quoted string) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(EscapeLiteral{Value: value}, f)
}

// ExprNotificationsBind drains pending notifications and passes them to f.
// Fuses ExprPerform(GetNotifications{}) + ExprBind.
func ExprNotificationsBind[B any](f func(ns []Notification) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprGetNotifications, f)
}

// ExprNotificationsTimeoutBind waits up to millis for notifications and
// passes them to f. Fuses ExprPerform(GetNotificationsTimeout{...}) + ExprBind.
func ExprNotificationsTimeoutBind[B any](millis int, f func(ns []Notification) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(GetNotificationsTimeout{Millis: millis}, f)
}

// ExprParameterStatusBind reads a server parameter status and passes it to f.
// Fuses ExprPerform(GetParameterStatus{...}) + ExprBind.
func ExprParameterStatusBind[B any](name string, f func(status string) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(GetParameterStatus{Name: name}, f)
}
