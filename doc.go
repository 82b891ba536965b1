// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pgio provides a deferred operation algebra for the PostgreSQL-specific
// connection extension surface, via algebraic effects on [code.hybscloud.com/kont].
//
// Programs are inert data: operations are typed descriptors dispatched on a
// live connection only when an interpreter walks the program. Building a
// program performs no I/O.
//
// # Architecture
//
//   - Operations: typed descriptors embedding [code.hybscloud.com/kont.Phantom]; each carries
//     a DispatchConn method that double-dispatches to a [Visitor] (closed operations, open
//     interpreters: adding an interpreter is implementing one interface).
//   - Interpretation: a [Visitor] bound to a live connection realizes operation semantics;
//     an [Interp] is one interpretation pass over that visitor.
//   - Asynchrony: [Async] suspends on a callback registration; the outcome is delivered
//     through a one-shot bounded SPSC mailbox via [code.hybscloud.com/lfq], awaited with
//     [code.hybscloud.com/iox.Backoff]. The stepping API surfaces
//     [code.hybscloud.com/iox.ErrWouldBlock] until the callback fires.
//   - Error Handling: dispatch errors short-circuit the pass as
//     [code.hybscloud.com/kont.Either] internally and surface as plain error returns;
//     [HandleErrorWith] intercepts a failure and resumes with a recovery program.
//
// # API Topologies
//
//   - Operations: [GetBackendPID], [CancelQuery], [AddDataType], [GetAutosave], [SetAutosave],
//     [GetDefaultFetchSize], [SetDefaultFetchSize], [GetPrepareThreshold],
//     [SetPrepareThreshold], [EscapeIdentifier], [EscapeLiteral], [GetNotifications],
//     [GetNotificationsTimeout], [GetParameterStatus].
//   - Universal operations: [Raw] (escape hatch over the live connection), [Embed] (foreign
//     program plus the context it runs against), [Thunk] (deferred computation), [Recover]
//     (error recovery), [Await] (asynchronous suspension).
//   - Cont-world: [BackendPIDBind], [SetFetchSizeThen], [NotificationsBind], etc., plus
//     [WithConn], [Delay], [RaiseError], [HandleErrorWith], [OnError], [Async], [Suspend],
//     [EmbedProgram].
//   - Expr-world: Zero-allocation single-use variants like [ExprBackendPIDBind],
//     [ExprSetFetchSizeThen], [ExprDelay], [ExprRaiseError]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative programs.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate programs one operation at a time, making them
//     easy to integrate with a proactor loop. [Advance] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] while an [Await] outcome is pending.
//   - Blocking: [Exec] and [ExecExpr] (and the [Run]/[RunExpr] conveniences) interpret to
//     completion, waiting past asynchronous boundaries using adaptive backoff.
//
// # Example
//
//	program := pgio.BackendPIDBind(func(pid int) kont.Eff[int] {
//		return pgio.SetFetchSizeThen(64, kont.Pure(pid))
//	})
//	pid, err := pgio.Run(visitor, program)
package pgio
