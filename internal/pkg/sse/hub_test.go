package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublish_DeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Kind: "notification", Data: map[string]string{"id": "n-1"}})

	ev := receiveEvent(t, ch)
	assert.Equal(t, "notification", ev.Kind)
}

func TestPublish_DoesNotCrossUsers(t *testing.T) {
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Publish("user-1", Event{Kind: "notification"})

	receiveEvent(t, ch1)
	select {
	case ev := <-ch2:
		t.Fatalf("unexpected event for other user: %v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcast_ReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Broadcast(Event{Kind: "payroll_cycles"})

	assert.Equal(t, "payroll_cycles", receiveEvent(t, ch1).Kind)
	assert.Equal(t, "payroll_cycles", receiveEvent(t, ch2).Kind)
}

func TestPublish_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			hub.Publish("user-1", Event{Kind: "notification"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}

func TestCleanup_RemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}
