// Implements ProcessQueue, the insertion-ordered queue used for both the ready set
// and the I/O device's wait list.

package sim

import (
	"fmt"
	"strings"
)

// ProcessQueue is a FIFO of processes. Iteration order is insertion order, which
// is the tie-break every dispatch policy relies on.
type ProcessQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (q *ProcessQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	q.queue = append(q.queue, p)
}

func (q *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(p.ID)
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of queued processes.
func (q *ProcessQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage: callers MUST NOT
// append to, reslice or reorder it.
func (q *ProcessQueue) Items() []*Process {
	return q.queue
}

// Dequeue removes and returns the front process, or nil when empty.
func (q *ProcessQueue) Dequeue() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	p := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return p
}

// RemoveAt removes and returns the process at index i, preserving the relative
// order of the remaining processes. Panics on an out-of-range index.
func (q *ProcessQueue) RemoveAt(i int) *Process {
	if i < 0 || i >= len(q.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range [0, %d)", i, len(q.queue)))
	}
	if i == 0 {
		return q.Dequeue()
	}
	p := q.queue[i]
	q.queue = append(q.queue[:i], q.queue[i+1:]...)
	return p
}
