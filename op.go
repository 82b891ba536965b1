// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Named operations of the wrapped connection extension.
// Each is an immutable descriptor carrying exactly the arguments of the
// corresponding call, tagged with its result type via kont.Phantom.
// Construction performs no I/O; DispatchConn realizes the call on a Visitor.

// GetBackendPID is the operation for reading the backend process id.
// Perform(GetBackendPID{}) yields the server-side process id.
type GetBackendPID struct {
	kont.Phantom[int]
}

// DispatchConn handles GetBackendPID on the visitor's connection.
func (GetBackendPID) DispatchConn(v Visitor) (kont.Resumed, error) {
	pid, err := v.GetBackendPID()
	if err != nil {
		return nil, err
	}
	return pid, nil
}

// CancelQuery is the operation for cancelling the in-flight query.
// Perform(CancelQuery{}) issues a cancel request for the current backend.
type CancelQuery struct {
	kont.Phantom[struct{}]
}

// DispatchConn handles CancelQuery on the visitor's connection.
func (CancelQuery) DispatchConn(v Visitor) (kont.Resumed, error) {
	if err := v.CancelQuery(); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// AddDataType is the operation for registering a custom data type mapping.
// Perform(AddDataType{Name: n, Kind: k}) binds server type n to codec kind k.
type AddDataType struct {
	kont.Phantom[struct{}]
	Name string
	Kind string
}

// DispatchConn handles AddDataType on the visitor's connection.
func (o AddDataType) DispatchConn(v Visitor) (kont.Resumed, error) {
	if err := v.AddDataType(o.Name, o.Kind); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// GetAutosave is the operation for reading the autosave policy.
type GetAutosave struct {
	kont.Phantom[Autosave]
}

// DispatchConn handles GetAutosave on the visitor's connection.
func (GetAutosave) DispatchConn(v Visitor) (kont.Resumed, error) {
	mode, err := v.GetAutosave()
	if err != nil {
		return nil, err
	}
	return mode, nil
}

// SetAutosave is the operation for setting the autosave policy.
type SetAutosave struct {
	kont.Phantom[struct{}]
	Mode Autosave
}

// DispatchConn handles SetAutosave on the visitor's connection.
func (o SetAutosave) DispatchConn(v Visitor) (kont.Resumed, error) {
	if err := v.SetAutosave(o.Mode); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// GetDefaultFetchSize is the operation for reading the default fetch size.
type GetDefaultFetchSize struct {
	kont.Phantom[int]
}

// DispatchConn handles GetDefaultFetchSize on the visitor's connection.
func (GetDefaultFetchSize) DispatchConn(v Visitor) (kont.Resumed, error) {
	rows, err := v.GetDefaultFetchSize()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetDefaultFetchSize is the operation for setting the default fetch size.
type SetDefaultFetchSize struct {
	kont.Phantom[struct{}]
	Rows int
}

// DispatchConn handles SetDefaultFetchSize on the visitor's connection.
func (o SetDefaultFetchSize) DispatchConn(v Visitor) (kont.Resumed, error) {
	if err := v.SetDefaultFetchSize(o.Rows); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// GetPrepareThreshold is the operation for reading the prepare threshold.
type GetPrepareThreshold struct {
	kont.Phantom[int]
}

// DispatchConn handles GetPrepareThreshold on the visitor's connection.
func (GetPrepareThreshold) DispatchConn(v Visitor) (kont.Resumed, error) {
	calls, err := v.GetPrepareThreshold()
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// SetPrepareThreshold is the operation for setting the prepare threshold.
type SetPrepareThreshold struct {
	kont.Phantom[struct{}]
	Calls int
}

// DispatchConn handles SetPrepareThreshold on the visitor's connection.
func (o SetPrepareThreshold) DispatchConn(v Visitor) (kont.Resumed, error) {
	if err := v.SetPrepareThreshold(o.Calls); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// EscapeIdentifier is the operation for quoting an SQL identifier.
type EscapeIdentifier struct {
	kont.Phantom[string]
	Name string
}

// DispatchConn handles EscapeIdentifier on the visitor's connection.
func (o EscapeIdentifier) DispatchConn(v Visitor) (kont.Resumed, error) {
	quoted, err := v.EscapeIdentifier(o.Name)
	if err != nil {
		return nil, err
	}
	return quoted, nil
}

// EscapeLiteral is the operation for quoting an SQL literal value.
type EscapeLiteral struct {
	kont.Phantom[string]
	Value string
}

// DispatchConn handles EscapeLiteral on the visitor's connection.
func (o EscapeLiteral) DispatchConn(v Visitor) (kont.Resumed, error) {
	quoted, err := v.EscapeLiteral(o.Value)
	if err != nil {
		return nil, err
	}
	return quoted, nil
}

// GetNotifications is the operation for draining pending NOTIFY messages.
type GetNotifications struct {
	kont.Phantom[[]Notification]
}

// DispatchConn handles GetNotifications on the visitor's connection.
func (GetNotifications) DispatchConn(v Visitor) (kont.Resumed, error) {
	ns, err := v.GetNotifications()
	if err != nil {
		return nil, err
	}
	return ns, nil
}

// GetNotificationsTimeout is the timed overload of GetNotifications.
// Same capability name, distinct argument shape, distinct variant.
type GetNotificationsTimeout struct {
	kont.Phantom[[]Notification]
	Millis int
}

// DispatchConn handles GetNotificationsTimeout on the visitor's connection.
func (o GetNotificationsTimeout) DispatchConn(v Visitor) (kont.Resumed, error) {
	ns, err := v.GetNotificationsTimeout(o.Millis)
	if err != nil {
		return nil, err
	}
	return ns, nil
}

// GetParameterStatus is the operation for reading a server parameter status.
type GetParameterStatus struct {
	kont.Phantom[string]
	Name string
}

// DispatchConn handles GetParameterStatus on the visitor's connection.
func (o GetParameterStatus) DispatchConn(v Visitor) (kont.Resumed, error) {
	status, err := v.GetParameterStatus(o.Name)
	if err != nil {
		return nil, err
	}
	return status, nil
}
