// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio_test

import (
	"errors"
	"strings"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/pgio"
)

// call is one recorded dispatch: the operation name and its argument.
type call struct {
	name string
	arg  any
}

// fakeConn is a Visitor over an in-memory connection.
// Every dispatched operation is recorded in order; failOn forces the named
// operation to fail with failErr, exercising error propagation.
type fakeConn struct {
	pid       int
	autosave  pgio.Autosave
	fetchSize int
	threshold int
	params    map[string]string
	notices   []pgio.Notification
	types     map[string]string
	calls     []call
	failOn    string
	failErr   error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		pid:    7,
		params: map[string]string{"server_version": "17.2"},
		types:  map[string]string{},
	}
}

// record appends the dispatch and returns the forced error, if any.
func (c *fakeConn) record(name string, arg any) error {
	c.calls = append(c.calls, call{name: name, arg: arg})
	if c.failOn == name {
		return c.failErr
	}
	return nil
}

// callNames returns the recorded operation names in dispatch order.
func (c *fakeConn) callNames() []string {
	names := make([]string, len(c.calls))
	for i, cl := range c.calls {
		names[i] = cl.name
	}
	return names
}

func (c *fakeConn) GetBackendPID() (int, error) {
	if err := c.record("GetBackendPID", nil); err != nil {
		return 0, err
	}
	return c.pid, nil
}

func (c *fakeConn) CancelQuery() error {
	return c.record("CancelQuery", nil)
}

func (c *fakeConn) AddDataType(name, kind string) error {
	if err := c.record("AddDataType", name); err != nil {
		return err
	}
	c.types[name] = kind
	return nil
}

func (c *fakeConn) GetAutosave() (pgio.Autosave, error) {
	if err := c.record("GetAutosave", nil); err != nil {
		return 0, err
	}
	return c.autosave, nil
}

func (c *fakeConn) SetAutosave(mode pgio.Autosave) error {
	if err := c.record("SetAutosave", mode); err != nil {
		return err
	}
	c.autosave = mode
	return nil
}

func (c *fakeConn) GetDefaultFetchSize() (int, error) {
	if err := c.record("GetDefaultFetchSize", nil); err != nil {
		return 0, err
	}
	return c.fetchSize, nil
}

func (c *fakeConn) SetDefaultFetchSize(rows int) error {
	if err := c.record("SetDefaultFetchSize", rows); err != nil {
		return err
	}
	c.fetchSize = rows
	return nil
}

func (c *fakeConn) GetPrepareThreshold() (int, error) {
	if err := c.record("GetPrepareThreshold", nil); err != nil {
		return 0, err
	}
	return c.threshold, nil
}

func (c *fakeConn) SetPrepareThreshold(calls int) error {
	if err := c.record("SetPrepareThreshold", calls); err != nil {
		return err
	}
	c.threshold = calls
	return nil
}

func (c *fakeConn) EscapeIdentifier(name string) (string, error) {
	if err := c.record("EscapeIdentifier", name); err != nil {
		return "", err
	}
	return `"` + name + `"`, nil
}

func (c *fakeConn) EscapeLiteral(value string) (string, error) {
	if err := c.record("EscapeLiteral", value); err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(value, "'", "''") + "'", nil
}

func (c *fakeConn) GetNotifications() ([]pgio.Notification, error) {
	if err := c.record("GetNotifications", nil); err != nil {
		return nil, err
	}
	ns := c.notices
	c.notices = nil
	return ns, nil
}

func (c *fakeConn) GetNotificationsTimeout(millis int) ([]pgio.Notification, error) {
	if err := c.record("GetNotificationsTimeout", millis); err != nil {
		return nil, err
	}
	ns := c.notices
	c.notices = nil
	return ns, nil
}

func (c *fakeConn) GetParameterStatus(name string) (string, error) {
	if err := c.record("GetParameterStatus", name); err != nil {
		return "", err
	}
	return c.params[name], nil
}

func (c *fakeConn) Raw(f func(conn any) (any, error)) (any, error) {
	if err := c.record("Raw", nil); err != nil {
		return nil, err
	}
	return f(c)
}

func (c *fakeConn) Embed(e pgio.Embedded) (any, error) {
	if err := c.record("Embed", nil); err != nil {
		return nil, err
	}
	v, ok := e.Context().(pgio.Visitor)
	if !ok {
		return nil, errors.New("embed: context is not a Visitor")
	}
	return pgio.ExecExpr(pgio.NewInterp(v), e.Program())
}

// stepExec drives a program to completion via Step+Advance.
// Retries on iox.ErrWouldBlock (Await outcome not delivered yet).
// Used by stepping tests to exercise the non-blocking path.
func stepExec[R any](in *pgio.Interp, p kont.Expr[R]) (R, error) {
	result, susp := pgio.Step[R](p)
	var err error
	for susp != nil {
		result, susp, err = pgio.Advance(in, susp)
		if err != nil {
			if errors.Is(err, iox.ErrWouldBlock) {
				continue
			}
			return result, err
		}
	}
	return result, nil
}
