// Package notify fans analysis events out to dashboard subscribers.
//
// 분석 경계와 대시보드 사이의 명시적 메시지 채널이다. 전역 싱글턴이 아니라
// main에서 생성해 주입하므로 엔진은 허브 없이도 단독 테스트 가능하다.
package notify

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/logscope/backend/internal/model"
)

const subscriberBuffer = 64

// Event - 분석 완료 한 건에 대한 대시보드 알림
type Event struct {
	Service   string               `json:"service,omitempty"`
	Status    model.Status         `json:"status"`
	Severity  model.Severity       `json:"severity"`
	Total     int                  `json:"total_entries"`
	Errors    int                  `json:"error_count"`
	Warnings  int                  `json:"warning_count"`
	Source    model.AnalysisSource `json:"source"`
	Timestamp time.Time            `json:"timestamp"`
}

// Hub broadcasts events to all subscribers. Slow subscribers drop events
// instead of blocking the analysis path.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	dropped     atomic.Int64
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Subscribe returns a buffered channel receiving every published event.
// Call the returned cancel func to unsubscribe and close the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Publish 는 RLock만 잡으므로 동시 발행 시 카운터는 원자적으로 증가시킨다.
			total := h.dropped.Add(1)
			log.Printf("notify: dropped event for slow subscriber (total dropped: %d)", total)
		}
	}
}

// Dropped returns the number of events dropped due to slow subscribers.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
