package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestStartsIdle(t *testing.T) {
	assert := assert.New(t)

	l := NewLatest[int]()
	assert.Equal(StateIdle, l.Get().State)

	_, ok := l.Value()
	assert.False(ok)
}

func TestLatestStateTransitions(t *testing.T) {
	assert := assert.New(t)

	l := NewLatest[string]()

	l.SetLoading()
	assert.Equal(StateLoading, l.Get().State)

	l.SetValue("ready")
	result := l.Get()
	assert.Equal(StateSuccess, result.State)
	assert.Equal("ready", result.Value)

	value, ok := l.Value()
	assert.True(ok)
	assert.Equal("ready", value)

	// An error overwrites the previous success entirely.
	l.SetError(errors.New("boom"))
	result = l.Get()
	assert.Equal(StateError, result.State)
	assert.EqualError(result.Err, "boom")
	assert.Empty(result.Value)

	_, ok = l.Value()
	assert.False(ok)

	// Loading clears the stored error.
	l.SetLoading()
	assert.NoError(l.Get().Err)
}

func TestLatestConcurrentAccess(t *testing.T) {
	l := NewLatest[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			l.SetValue(v)
		}(i)
		go func() {
			defer wg.Done()
			l.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, StateSuccess, l.Get().State)
}
