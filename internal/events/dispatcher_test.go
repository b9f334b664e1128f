package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToAllSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var first, second int
	dispatcher.Subscribe(EventFeeRecorded, func(context.Context, Event) error {
		first++
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventFeeRecorded, func(context.Context, Event) error {
		second++
		return nil
	})
	dispatcher.Subscribe(EventLoanUpdated, func(context.Context, Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventFeeRecorded})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second, "a failing handler does not block the rest")
}

func TestDispatcherIgnoresUnsubscribedEvents(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventStudentDeleted}))
}
