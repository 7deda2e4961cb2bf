package fist

import "sync"

// errorLog records raised errors: always the most recent one, plus a ring
// buffer of recent history when a size is configured.
type errorLog struct {
	mu     sync.RWMutex
	last   error
	errors []error
	head   int
	count  int
}

// newErrorLog creates an error log retaining up to size errors of history.
// If size is 0 or negative, only the most recent error is kept.
func newErrorLog(size int) *errorLog {
	l := &errorLog{}
	if size > 0 {
		l.errors = make([]error, size)
	}
	return l
}

// push records err as the most recent error.
func (l *errorLog) push(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.last = err
	if len(l.errors) == 0 {
		return
	}
	l.errors[l.head] = err
	l.head = (l.head + 1) % len(l.errors)
	if l.count < len(l.errors) {
		l.count++
	}
}

// latest returns the most recent error, or nil.
func (l *errorLog) latest() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.last
}

// clear forgets every recorded error.
func (l *errorLog) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.errors {
		l.errors[i] = nil
	}
	l.last = nil
	l.head = 0
	l.count = 0
}

// all returns the error history, oldest first. It is nil when history is
// disabled or empty.
func (l *errorLog) all() []error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.count == 0 {
		return nil
	}

	size := len(l.errors)
	result := make([]error, l.count)
	start := (l.head - l.count + size) % size
	for i := 0; i < l.count; i++ {
		result[i] = l.errors[(start+i)%size]
	}
	return result
}
