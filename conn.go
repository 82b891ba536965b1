// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/kont"
)

// Autosave selects the server-side savepoint policy of the wrapped connection.
type Autosave uint8

const (
	// AutosaveNever performs no automatic savepoints.
	AutosaveNever Autosave = iota
	// AutosaveConservative wraps only statements likely to invalidate the
	// transaction in a savepoint.
	AutosaveConservative
	// AutosaveAlways wraps every statement in a savepoint.
	AutosaveAlways
)

// String returns the lowercase policy name.
func (a Autosave) String() string {
	switch a {
	case AutosaveConservative:
		return "conservative"
	case AutosaveAlways:
		return "always"
	default:
		return "never"
	}
}

// Notification is one asynchronous NOTIFY message received by the connection.
type Notification struct {
	// PID is the backend process id of the notifying session.
	PID int
	// Channel is the NOTIFY channel name.
	Channel string
	// Payload is the optional notification payload.
	Payload string
}

// Visitor realizes operation semantics against a live connection.
// The package never constructs connections; a Visitor is implemented
// externally, owns its connection for the duration of one interpretation
// pass, and is the only place operations gain behavior.
//
// One method per named operation, plus the two universal operations that
// need the live connection: Raw and Embed. The remaining universal
// operations (Thunk, Recover, Await) carry no connection dependency and are
// realized by the evaluation layer, mirroring the composed-handler dispatch
// of kont's error effect.
type Visitor interface {
	GetBackendPID() (int, error)
	CancelQuery() error
	AddDataType(name, kind string) error
	GetAutosave() (Autosave, error)
	SetAutosave(mode Autosave) error
	GetDefaultFetchSize() (int, error)
	SetDefaultFetchSize(rows int) error
	GetPrepareThreshold() (int, error)
	SetPrepareThreshold(calls int) error
	EscapeIdentifier(name string) (string, error)
	EscapeLiteral(value string) (string, error)
	GetNotifications() ([]Notification, error)
	GetNotificationsTimeout(millis int) ([]Notification, error)
	GetParameterStatus(name string) (string, error)

	// Raw applies an arbitrary function to the live connection.
	Raw(f func(conn any) (any, error)) (any, error)
	// Embed runs a foreign program against the interpreter derived from
	// its context value. The embedded program is stored verbatim and only
	// expanded here.
	Embed(e Embedded) (any, error)
}

// connDispatcher is the structural interface for operations that need the
// live connection. Each such operation double-dispatches itself to the
// matching Visitor method.
type connDispatcher interface {
	DispatchConn(v Visitor) (kont.Resumed, error)
}

// thunkDispatcher is the structural interface for deferred computations.
// Evaluated exactly once per interpretation pass.
type thunkDispatcher interface {
	DispatchThunk() (kont.Resumed, error)
}

// recoverDispatcher is the structural interface for error recovery.
// run interprets an erased program under the current pass.
type recoverDispatcher interface {
	DispatchRecover(run func(kont.Expr[kont.Erased]) (kont.Erased, error)) (kont.Resumed, error)
}

// awaitDispatcher is the structural interface for asynchronous suspension.
// DispatchAwait registers the completion callback on the mailbox; it must be
// called at most once per interpretation pass.
type awaitDispatcher interface {
	DispatchAwait(mb *mailbox)
}

// Interp is one interpretation pass binding a Visitor.
// It owns the visitor's connection for the duration of the pass
// (single-writer: no two steps of the same program execute concurrently
// against it) and carries the in-flight Await mailbox for the stepping API.
// An Interp is not shared across concurrent passes.
type Interp struct {
	v       Visitor
	pending *mailbox
	serial  Serial
}

// NewInterp creates an interpretation pass over v and assigns its serial.
func NewInterp(v Visitor) *Interp {
	return &Interp{v: v, serial: nextSerial()}
}

// Visitor returns the visitor this pass dispatches to.
func (in *Interp) Visitor() Visitor {
	return in.v
}

// Serial returns the serial number assigned to this pass.
func (in *Interp) Serial() Serial {
	return in.serial
}
