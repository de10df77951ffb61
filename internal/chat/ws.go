package chat

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/digitgenius/shopassist/internal/transcript"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsError is the error frame sent for malformed websocket messages. Errors
// inside the pipeline itself still come back as normal chat responses.
type wsError struct {
	Error string `json:"error"`
}

// handleWebSocket speaks the same {message, history} / {reply, source,
// context} contract as the POST endpoint, one JSON frame per turn.
func handleWebSocket(chain *Chain, transcripts *transcript.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req Request
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			if strings.TrimSpace(req.Message) == "" && len(req.History) == 0 {
				if err := conn.WriteJSON(wsError{Error: "Missing message"}); err != nil {
					log.Printf("chat: websocket write: %v", err)
					return
				}
				continue
			}

			resp := chain.Handle(r.Context(), req)
			record(transcripts, r, req, resp, "ws")

			if err := conn.WriteJSON(resp); err != nil {
				log.Printf("chat: websocket write: %v", err)
				return
			}
		}
	}
}
