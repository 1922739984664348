// Package store holds the latest result of each fetch kind for the
// display layer. A holder is always in exactly one of three states:
// loading, success with a value, or error.
package store

import "sync"

// State is the phase of the latest fetch.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// Result is a point-in-time view of a holder. Value is meaningful only
// in StateSuccess, Err only in StateError.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// Latest is a thread-safe holder for the most recent result of one fetch
// kind. Each new fetch overwrites the previous result; there is no
// history.
type Latest[T any] struct {
	mutex  sync.RWMutex
	result Result[T]
}

// NewLatest creates a holder in the idle state.
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{}
}

// SetLoading marks a fetch in flight, discarding any previous value or
// error.
func (l *Latest[T]) SetLoading() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.result = Result[T]{State: StateLoading}
}

// SetValue stores a successful result.
func (l *Latest[T]) SetValue(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.result = Result[T]{State: StateSuccess, Value: value}
}

// SetError stores a failed result.
func (l *Latest[T]) SetError(err error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.result = Result[T]{State: StateError, Err: err}
}

// Get returns the current result.
func (l *Latest[T]) Get() Result[T] {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.result
}

// Value returns the stored value and whether the holder is in the
// success state.
func (l *Latest[T]) Value() (T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	if l.result.State != StateSuccess {
		var zero T
		return zero, false
	}
	return l.result.Value, true
}
