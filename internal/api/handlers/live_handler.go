package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/coinpulse/crypto-news-search/internal/news"
)

// LiveHandler serves the live-update duplex channel. Each inbound text frame
// is a raw query; the reply frame carries the same JSON payload the HTTP
// search endpoint returns. Both transports go through the identical engine
// entry point so cache and statistics stay consistent.
type LiveHandler struct {
	engine   *news.Engine
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new websocket handler over the shared engine.
func NewLiveHandler(engine *news.Engine) *LiveHandler {
	return &LiveHandler{
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Origin policy matches the wide-open CORS on the HTTP surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// liveError is the error frame sent when a query fails. The connection
// stays open; one bad query does not end the session.
type liveError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Serve godoc
// @Summary Live news channel
// @Description Upgrades to a websocket. Send a search term as a text frame, receive the search result as a JSON frame. Failures produce an error frame and keep the connection open.
// @Tags news
// @Router /ws [get]
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	log.Printf("live session %s opened from %s", session, c.ClientIP())

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			log.Printf("live session %s closed: %v", session, err)
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		result, err := h.engine.Resolve(c.Request.Context(), string(payload))
		if err != nil {
			if writeErr := conn.WriteJSON(liveError{Error: err.Error(), Kind: news.Kind(err)}); writeErr != nil {
				log.Printf("live session %s write failed: %v", session, writeErr)
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			log.Printf("live session %s write failed: %v", session, err)
			return
		}
	}
}
