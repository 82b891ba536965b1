// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// mailboxCapacity is the bounded capacity of the completion queue.
// A single outcome ever travels through it; 4 keeps the ring buffer
// within a single cache line.
const mailboxCapacity = 4

// completion is the outcome an Await callback delivers: a resume value on
// success, or the error that fails the pass.
type completion struct {
	value any
	err   error
}

// mailbox carries one Await outcome from the completing thread to the
// interpreting thread over a bounded lock-free SPSC queue.
// Delivery is one-shot: the first callback invocation wins, later ones are
// ignored. The interpreting side polls with poll, backing off on
// iox.ErrWouldBlock until the outcome arrives.
type mailbox struct {
	q    lfq.SPSC[completion]
	used atomix.Uint32
	slot completion
}

// newMailbox creates a mailbox for a single Await step.
func newMailbox() *mailbox {
	mb := &mailbox{}
	mb.q.Init(mailboxCapacity)
	return mb
}

// deliver publishes the outcome. Safe to call from any goroutine;
// at most the first call takes effect.
func (mb *mailbox) deliver(value any, err error) {
	if mb.used.Add(1) != 1 {
		return
	}
	mb.slot = completion{value: value, err: err}
	if qerr := mb.q.Enqueue(&mb.slot); qerr != nil {
		panic("pgio: completion mailbox full")
	}
}

// poll attempts to take the outcome.
// Non-blocking: returns iox.ErrWouldBlock while the callback has not fired.
func (mb *mailbox) poll() (completion, error) {
	return mb.q.Dequeue()
}
