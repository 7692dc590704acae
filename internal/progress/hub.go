// Package progress broadcasts render-job progress to websocket subscribers.
// The narration pipeline itself stays synchronous; this hub only observes it
// through the usecase's notifier callbacks.
package progress

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nayottama/wicara/domain/entities"
)

// Event is one progress update pushed to subscribers.
type Event struct {
	Type        string `json:"type"` // "progress" or "status"
	JobID       string `json:"jobId"`
	SlidesDone  int    `json:"slidesDone,omitempty"`
	SlidesTotal int    `json:"slidesTotal,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Hub tracks websocket subscribers per render job.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*websocket.Conn]bool
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Subscribe upgrades the connection and streams events for jobID until the
// client disconnects.
func (h *Hub) Subscribe(c echo.Context, jobID string) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.subscribers[jobID] == nil {
		h.subscribers[jobID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[jobID][conn] = true
	h.mu.Unlock()

	h.logger.Info("Progress subscriber connected", zap.String("jobID", jobID))

	// Drain the read side to detect disconnects.
	go func() {
		defer h.remove(jobID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

// NotifyProgress implements usecase.ProgressNotifier.
func (h *Hub) NotifyProgress(jobID string, done, total int) {
	h.broadcast(jobID, Event{
		Type:        "progress",
		JobID:       jobID,
		SlidesDone:  done,
		SlidesTotal: total,
	})
}

// NotifyStatus implements usecase.ProgressNotifier.
func (h *Hub) NotifyStatus(jobID string, status entities.RenderJobStatus) {
	h.broadcast(jobID, Event{
		Type:   "status",
		JobID:  jobID,
		Status: string(status),
	})
}

func (h *Hub) broadcast(jobID string, event Event) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[jobID]))
	for conn := range h.subscribers[jobID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Debug("Dropping dead subscriber",
				zap.String("jobID", jobID),
				zap.Error(err))
			h.remove(jobID, conn)
		}
	}
}

func (h *Hub) remove(jobID string, conn *websocket.Conn) {
	h.mu.Lock()
	if subs, ok := h.subscribers[jobID]; ok {
		if subs[conn] {
			delete(subs, conn)
			conn.Close()
		}
		if len(subs) == 0 {
			delete(h.subscribers, jobID)
		}
	}
	h.mu.Unlock()
}
