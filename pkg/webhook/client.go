// Package webhook posts order lifecycle events to an external endpoint.
// Bursts for the same order collapse into a single delivery (last event
// wins) so a create followed by inventory bookkeeping pings once.
package webhook

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"back_office/internal/debounce"
)

type Event struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Notifier struct {
	url        string
	httpClient *http.Client
	group      *debounce.Group[string, Event]
}

// NewNotifier returns nil when url is empty; a nil notifier is a no-op.
func NewNotifier(url string) *Notifier {
	return newNotifier(url, 2*time.Second, 10*time.Second)
}

func newNotifier(url string, wait, maxWait time.Duration) *Notifier {
	if url == "" {
		return nil
	}
	n := &Notifier{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	n.group = debounce.NewGroup(wait, maxWait, func(_ string, e Event) {
		n.send(e)
	})
	return n
}

func (n *Notifier) Notify(event Event) {
	if n == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	n.group.Trigger(event.OrderID, event)
}

func (n *Notifier) send(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("webhook: marshal event: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("webhook: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("webhook: deliver %s for order %s: %v", event.Type, event.OrderNumber, err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		log.Printf("webhook: deliver %s for order %s: status %d", event.Type, event.OrderNumber, resp.StatusCode)
	}
}

// Close drops pending deliveries.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.group.Stop()
}
