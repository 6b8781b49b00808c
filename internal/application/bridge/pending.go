package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultQueryTimeout bounds how long a query waits for the page to reply.
const DefaultQueryTimeout = 10 * time.Second

// ErrQueryTimeout is returned by Ticket.Wait when no reply arrived in time.
var ErrQueryTimeout = errors.New("bridge query timed out")

// Pending holds the single outstanding query-with-reply.
//
// Arming a new query supersedes the previous one: the old ticket can no
// longer be resolved by any reply and completes only through its timeout.
// Replies carry the ticket id so a late answer to a superseded query cannot
// resolve the current one.
type Pending struct {
	mu      sync.Mutex
	current *Ticket
	newID   func() string
}

// NewPending creates an empty slot.
func NewPending() *Pending {
	return &Pending{newID: uuid.NewString}
}

// Ticket is one armed query.
type Ticket struct {
	id    string
	owner *Pending
	reply chan bool
	once  sync.Once
}

// ID is the request id the page must echo in its reply.
func (t *Ticket) ID() string {
	return t.id
}

// Begin arms the slot with a fresh ticket.
func (p *Pending) Begin() *Ticket {
	t := &Ticket{
		id:    p.newID(),
		owner: p,
		reply: make(chan bool, 1),
	}

	p.mu.Lock()
	p.current = t
	p.mu.Unlock()
	return t
}

// Resolve delivers a reply to the armed ticket. An empty id matches the armed
// ticket, for pages that do not echo ids. It reports whether a ticket took
// the reply; unmatched replies are discarded.
func (p *Pending) Resolve(id string, value bool) bool {
	p.mu.Lock()
	t := p.current
	if t == nil || (id != "" && id != t.id) {
		p.mu.Unlock()
		return false
	}
	p.current = nil
	p.mu.Unlock()

	return t.deliver(value)
}

// Outstanding reports whether a ticket is armed.
func (p *Pending) Outstanding() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != nil
}

func (p *Pending) release(t *Ticket) {
	p.mu.Lock()
	if p.current == t {
		p.current = nil
	}
	p.mu.Unlock()
}

// Abandon releases the slot without a reply, e.g. when the query script
// could not be injected.
func (t *Ticket) Abandon() {
	t.owner.release(t)
}

func (t *Ticket) deliver(value bool) bool {
	delivered := false
	t.once.Do(func() {
		t.reply <- value
		delivered = true
	})
	return delivered
}

// Wait blocks until the reply arrives, the timeout elapses or ctx is done.
// Timeouts return false with ErrQueryTimeout.
func (t *Ticket) Wait(ctx context.Context, timeout time.Duration) (bool, error) {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case v := <-t.reply:
		return v, nil
	case <-timer.C:
		t.owner.release(t)
		return false, ErrQueryTimeout
	case <-ctx.Done():
		t.owner.release(t)
		return false, ctx.Err()
	}
}
