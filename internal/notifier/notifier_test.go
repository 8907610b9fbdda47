package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcast_CallsEverySubscriber(t *testing.T) {
	n := New()
	var a, b int
	n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	n.Broadcast()
	n.Broadcast()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	n := New()

	assert.NotPanics(t, n.Broadcast)
	assert.Equal(t, 0, n.Len())
}

func TestUnsubscribe_Idempotent(t *testing.T) {
	n := New()
	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })
	other := 0
	n.Subscribe(func() { other++ })

	unsubscribe()
	unsubscribe()
	n.Broadcast()

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, other)
	assert.Equal(t, 1, n.Len())
}

func TestBroadcast_SubscriberMayUnsubscribeDuringBroadcast(t *testing.T) {
	n := New()
	calls := 0
	var unsubscribe func()
	unsubscribe = n.Subscribe(func() {
		calls++
		unsubscribe()
	})

	n.Broadcast()
	n.Broadcast()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, n.Len())
}

func TestBroadcast_IsSynchronous(t *testing.T) {
	n := New()
	done := false
	n.Subscribe(func() { done = true })

	n.Broadcast()

	assert.True(t, done)
}
