package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRing_DrainsInFIFOOrder(t *testing.T) {
	r := NewEventRing(8)
	for i := 0; i < 5; i++ {
		assert.True(t, r.Push(Event{Kind: NoteOn, Note: i}))
	}
	var got []int
	r.Drain(func(e Event) { got = append(got, e.Note) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestEventRing_DropsOnFullQueue(t *testing.T) {
	r := NewEventRing(4) // rounds up internally but capacity is bounded
	cap := len(r.buf)
	for i := 0; i < cap; i++ {
		assert.True(t, r.Push(Event{Note: i}))
	}
	assert.False(t, r.Push(Event{Note: 999}))
	assert.Equal(t, uint64(1), r.Dropped())
}

func TestEventRing_DrainEmptiesQueue(t *testing.T) {
	r := NewEventRing(4)
	r.Push(Event{Note: 1})
	r.Drain(func(Event) {})
	count := 0
	r.Drain(func(Event) { count++ })
	assert.Equal(t, 0, count)
}

func TestEventRing_ConcurrentProducerConsumer(t *testing.T) {
	r := NewEventRing(256)
	const n = 2000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sent := 0
		for sent < n {
			if r.Push(Event{Note: sent}) {
				sent++
			}
		}
	}()

	received := 0
	for received < n {
		r.Drain(func(Event) { received++ })
	}
	wg.Wait()
	assert.Equal(t, n, received)
}
