package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T) (*httptest.Server, func() []Event) {
	t.Helper()
	var mu sync.Mutex
	var events []Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]Event(nil), events...)
	}
}

func TestNotifierCoalescesPerOrder(t *testing.T) {
	srv, got := collectEvents(t)

	n := newNotifier(srv.URL, 20*time.Millisecond, 200*time.Millisecond)
	defer n.Close()

	n.Notify(Event{Type: "order.created", OrderID: "a", OrderNumber: "ORD20260901-0001", Status: "draft"})
	n.Notify(Event{Type: "order.updated", OrderID: "a", OrderNumber: "ORD20260901-0001", Status: "confirmed"})

	time.Sleep(150 * time.Millisecond)

	events := got()
	require.Len(t, events, 1)
	assert.Equal(t, "order.updated", events[0].Type)
	assert.Equal(t, "confirmed", events[0].Status)
	assert.False(t, events[0].OccurredAt.IsZero())
}

func TestNotifierKeepsOrdersIndependent(t *testing.T) {
	srv, got := collectEvents(t)

	n := newNotifier(srv.URL, 20*time.Millisecond, 200*time.Millisecond)
	defer n.Close()

	n.Notify(Event{Type: "order.created", OrderID: "a", OrderNumber: "ORD20260901-0001", Status: "draft"})
	n.Notify(Event{Type: "order.created", OrderID: "b", OrderNumber: "ORD20260901-0002", Status: "draft"})

	time.Sleep(150 * time.Millisecond)

	events := got()
	require.Len(t, events, 2)
	numbers := []string{events[0].OrderNumber, events[1].OrderNumber}
	assert.ElementsMatch(t, []string{"ORD20260901-0001", "ORD20260901-0002"}, numbers)
}

func TestNilNotifierIsNoOp(t *testing.T) {
	n := NewNotifier("")
	assert.Nil(t, n)
	n.Notify(Event{Type: "order.created", OrderID: "a"})
	n.Close()
}
