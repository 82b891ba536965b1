// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// BackendPIDBind reads the backend process id and passes it to f.
// Fuses Perform(GetBackendPID{}) + Bind.
func BackendPIDBind[B any](f func(pid int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetBackendPID{}), f)
}

// CancelQueryThen cancels the in-flight query and continues with next.
// Fuses Perform(CancelQuery{}) + Then.
func CancelQueryThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(CancelQuery{}), next)
}

// AddDataTypeThen registers a data type mapping and continues with next.
// Fuses Perform(AddDataType{...}) + Then.
func AddDataTypeThen[B any](name, kind string, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(AddDataType{Name: name, Kind: kind}), next)
}

// AutosaveBind reads the autosave policy and passes it to f.
// Fuses Perform(GetAutosave{}) + Bind.
func AutosaveBind[B any](f func(mode Autosave) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetAutosave{}), f)
}

// SetAutosaveThen sets the autosave policy and continues with next.
// Fuses Perform(SetAutosave{...}) + Then.
func SetAutosaveThen[B any](mode Autosave, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SetAutosave{Mode: mode}), next)
}

// FetchSizeBind reads the default fetch size and passes it to f.
// Fuses Perform(GetDefaultFetchSize{}) + Bind.
func FetchSizeBind[B any](f func(rows int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetDefaultFetchSize{}), f)
}

// SetFetchSizeThen sets the default fetch size and continues with next.
// Fuses Perform(SetDefaultFetchSize{...}) + Then.
func SetFetchSizeThen[B any](rows int, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SetDefaultFetchSize{Rows: rows}), next)
}

// PrepareThresholdBind reads the prepare threshold and passes it to f.
// Fuses Perform(GetPrepareThreshold{}) + Bind.
func PrepareThresholdBind[B any](f func(calls int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetPrepareThreshold{}), f)
}

// SetPrepareThresholdThen sets the prepare threshold and continues with next.
// Fuses Perform(SetPrepareThreshold{...}) + Then.
func SetPrepareThresholdThen[B any](calls int, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SetPrepareThreshold{Calls: calls}), next)
}

// EscapeIdentifierBind quotes an identifier and passes the result to f.
// Fuses Perform(EscapeIdentifier{...}) + Bind.
func EscapeIdentifierBind[B any](name string, f func(quoted string) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(EscapeIdentifier{Name: name}), f)
}

// EscapeLiteralBind quotes a literal value and passes the result to f.
// Fuses Perform(EscapeLiteral{...}) + Bind.
func EscapeLiteralBind[B any](value string, f func(quoted string) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(EscapeLiteral{Value: value}), f)
}

// NotificationsBind drains pending notifications and passes them to f.
// Fuses Perform(GetNotifications{}) + Bind.
func NotificationsBind[B any](f func(ns []Notification) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetNotifications{}), f)
}

// NotificationsTimeoutBind waits up to millis for notifications and passes
// them to f. Fuses Perform(GetNotificationsTimeout{...}) + Bind.
func NotificationsTimeoutBind[B any](millis int, f func(ns []Notification) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetNotificationsTimeout{Millis: millis}), f)
}

// ParameterStatusBind reads a server parameter status and passes it to f.
// Fuses Perform(GetParameterStatus{...}) + Bind.
func ParameterStatusBind[B any](name string, f func(status string) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(GetParameterStatus{Name: name}), f)
}
