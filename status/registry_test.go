package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Ints.Count())
	assert.Zero(t, r.Floats.Count())
}

func TestConcurrentAdd(t *testing.T) {
	r := NewRegistry()
	f := r.Floats.Get(KeySpeed)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
				r.Ints.Get(KeyTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())
	assert.Equal(t, int64(8000), r.Ints.Get(KeyTicks).Load())
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyCollected).Store(3)
	r.Floats.Get(KeySpeed).Set(0.25)
	r.Strings.Get(KeyMode).Store("player")
	r.Bools.Get(KeyHullLoaded).Store(true)

	s := r.Snapshot()
	assert.Equal(t, "3", s[KeyCollected])
	assert.Equal(t, "0.250", s[KeySpeed])
	assert.Equal(t, "player", s[KeyMode])
	assert.Equal(t, "true", s[KeyHullLoaded])
	assert.Equal(t, 4, r.TotalCount())
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	for _, k := range []string{"c", "a", "b"} {
		r.Ints.Get(k)
	}
	var keys []string
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestAtomicStringTruncatesOnRune(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("a", MaxStringLen-1) + "é")
	assert.Equal(t, strings.Repeat("a", MaxStringLen-1), s.Load())
	s.Store("short")
	assert.Equal(t, "short", s.Load())
}
