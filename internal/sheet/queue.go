package sheet

import "strings"

// pendingQueue is a FIFO of text waiting for the next flush.
//
// Only one flush is outstanding at a time: enqueue reports true for the
// first entry after a drain, which is the caller's cue to schedule a flush.
// Later entries ride along with that flush.
//
// Not safe for concurrent use; the owning Sheet holds its lock around every
// call.
type pendingQueue struct {
	entries   []string
	scheduled bool
}

func (q *pendingQueue) enqueue(text string) bool {
	q.entries = append(q.entries, text)
	if q.scheduled {
		return false
	}
	q.scheduled = true
	return true
}

// drain returns queued text concatenated in order and empties the queue.
func (q *pendingQueue) drain() string {
	out := strings.Join(q.entries, "")
	q.entries = q.entries[:0]
	q.scheduled = false
	return out
}

func (q *pendingQueue) size() int {
	return len(q.entries)
}
