package state

import (
	"sync"

	"kampusgo.dev/kampussosyal/pkg/response"
)

// lifecycle is the shared request-tracking core embedded by every slice.
// Slices mutate their data under the same mutex.
type lifecycle struct {
	mu         sync.RWMutex
	notify     Notifier
	status     Status
	err        string
	pagination *response.Pagination
}

func newLifecycle(n Notifier) lifecycle {
	if n == nil {
		n = LogNotifier{}
	}
	return lifecycle{notify: n}
}

// begin marks a request in flight. Existing data stays in place so the
// caller keeps rendering it while the refresh runs.
func (l *lifecycle) begin() {
	l.mu.Lock()
	l.status = StatusPending
	l.err = ""
	l.mu.Unlock()
}

// fail records the error message and reports it to the notifier.
func (l *lifecycle) fail(err error) error {
	l.mu.Lock()
	l.status = StatusFailed
	l.err = err.Error()
	l.mu.Unlock()
	l.notify.Error(err.Error())
	return err
}

// succeed finishes a request, optionally replacing pagination metadata.
func (l *lifecycle) succeed(p *response.Pagination) {
	l.mu.Lock()
	l.status = StatusSucceeded
	l.err = ""
	if p != nil {
		l.pagination = p
	}
	l.mu.Unlock()
}

func (l *lifecycle) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *lifecycle) Err() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *lifecycle) Pagination() *response.Pagination {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.pagination == nil {
		return nil
	}
	p := *l.pagination
	return &p
}
