// Package realtime menyediakan pub/sub in-process untuk view yang di-refresh
// terus menerus (daftar produk, pelanggan, penjualan). Subscriber lambat
// kehilangan event lama, bukan memblokir publisher: snapshot yang sampai
// selalu urut naik, tapi state antara boleh terlewat.
package realtime

import (
	"sync"
	"time"
)

const subscriberBuffer = 16

// Topik yang dipakai controllers.
const (
	TopicProducts  = "products"
	TopicCustomers = "customers"
	TopicSales     = "sales"
	TopicSavings   = "savings"
)

type Event struct {
	Topic   string    `json:"topic"`
	Action  string    `json:"action"` // created/updated/deleted
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan Event
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan Event)}
}

// Subscribe mendaftarkan channel pada satu topik. Fungsi cancel melepas
// subscription dan menutup channel; aman dipanggil lebih dari sekali.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	h.nextID++
	id := h.nextID
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan Event)
	}
	h.subs[topic][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if subs, ok := h.subs[topic]; ok {
				if c, ok := subs[id]; ok {
					delete(subs, id)
					close(c)
				}
			}
		})
	}
	return ch, cancel
}

// Publish mengirim event ke semua subscriber topik. Buffer penuh: event
// tertua dibuang supaya publisher tidak pernah menunggu.
func (h *Hub) Publish(topic, action string, payload any) {
	ev := Event{Topic: topic, Action: action, Payload: payload, At: time.Now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for _, ch := range h.subs[topic] {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// Close menutup semua channel subscriber. Publish/Subscribe setelahnya no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, subs := range h.subs {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
	}
}

// Default adalah hub yang dipakai controllers.
var Default = NewHub()
