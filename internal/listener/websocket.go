// Package listener hosts player display surfaces over websockets: each
// connection is a read-only replica fed from the display bus. Clients never
// write back; anything they send is discarded.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pixil98/go-vtt/internal/display"
)

const (
	writeTimeout = 5 * time.Second

	// frameBuffer bounds per-client queues. Events are fire-and-forget and
	// last-write-wins, so dropping under pressure is correct.
	frameBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 8192,
	// The DM process and player windows share an origin on localhost.
	CheckOrigin: func(*http.Request) bool { return true },
}

// frame is the wire envelope relayed to clients.
type frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WebsocketListener serves one surface's display stream.
type WebsocketListener struct {
	port    uint16
	surface string
	sub     display.Subscriber
}

func NewWebsocketListener(port uint16, surface string, sub display.Subscriber) *WebsocketListener {
	return &WebsocketListener{
		port:    port,
		surface: surface,
		sub:     sub,
	}
}

func (l *WebsocketListener) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/display", func(w http.ResponseWriter, r *http.Request) {
		l.handleDisplay(ctx, w, r)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("shutting down display listener", "error", err)
			}
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "display listener serving", "port", l.port, "surface", l.surface)

	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving display websocket on port %d: %w", l.port, err)
	}
	return nil
}

func (l *WebsocketListener) handleDisplay(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "upgrading display connection", "error", err)
		return
	}
	defer conn.Close()

	frames := make(chan frame, frameBuffer)
	var unsubs []func()
	defer func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}()

	for _, t := range display.EventTypes() {
		t := t
		unsub, err := l.sub.Subscribe(display.Subject(l.surface, t), func(data []byte) {
			select {
			case frames <- frame{Type: string(t), Data: data}:
			default:
				// Client is behind; the next event of this type supersedes
				// the dropped one anyway.
			}
		})
		if err != nil {
			slog.WarnContext(ctx, "subscribing display stream", "type", string(t), "error", err)
			return
		}
		unsubs = append(unsubs, unsub)
	}

	// Drain and discard client reads so pings are processed and a dropped
	// connection is noticed.
	readErr := make(chan struct{})
	go func() {
		defer close(readErr)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-readErr:
			return
		case f := <-frames:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		}
	}
}
