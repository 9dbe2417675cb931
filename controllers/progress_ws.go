package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/germannapsix/Json-translate-app/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ProgressEvent is one advisory update pushed to the UI while a run is in
// flight. It is cosmetic: the HTTP response of POST /translate is the only
// authoritative completion signal.
type ProgressEvent struct {
	Done      int       `json:"done"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type hub struct {
	mu   sync.Mutex
	subs map[string]map[chan ProgressEvent]struct{} // session id -> subscribers
}

var progressHub = &hub{subs: make(map[string]map[chan ProgressEvent]struct{})}

func (h *hub) Subscribe(session string) chan ProgressEvent {
	ch := make(chan ProgressEvent, 16)
	h.mu.Lock()
	if h.subs[session] == nil {
		h.subs[session] = make(map[chan ProgressEvent]struct{})
	}
	h.subs[session][ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) Unsubscribe(session string, ch chan ProgressEvent) {
	h.mu.Lock()
	if set, ok := h.subs[session]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.subs, session)
		}
	}
	h.mu.Unlock()
}

// Publish never blocks the pipeline: slow subscribers drop events.
func (h *hub) Publish(session string, evt ProgressEvent) {
	evt.Timestamp = time.Now()
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[session] {
		select {
		case ch <- evt:
		default:
		}
	}
}

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// TranslateProgressWS streams progress events for one session over a
// websocket: GET /ws/progress?session=<id>.
func TranslateProgressWS(c *gin.Context) {
	session := c.Query("session")
	if session == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "session query parameter required"})
		return
	}
	conn, err := progressUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L().Error("websocket upgrade error:", zap.Error(err))
		return
	}
	defer conn.Close()

	ch := progressHub.Subscribe(session)
	defer progressHub.Unsubscribe(session, ch)

	// Reader goroutine notices the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt := <-ch:
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
