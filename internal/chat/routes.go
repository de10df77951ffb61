package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/digitgenius/shopassist/internal/transcript"
)

// RegisterRoutes mounts the chat endpoints on the given router. transcripts
// may be nil, in which case exchanges are not recorded.
func RegisterRoutes(r chi.Router, chain *Chain, transcripts *transcript.Store) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/", handleChat(chain, transcripts))
		r.Get("/ws", handleWebSocket(chain, transcripts))
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		})
	})
}

func handleChat(chain *Chain, transcripts *transcript.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
			return
		}

		if strings.TrimSpace(req.Message) == "" && len(req.History) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing message"})
			return
		}

		resp := chain.Handle(r.Context(), req)
		record(transcripts, r, req, resp, "http")
		writeJSON(w, http.StatusOK, resp)
	}
}

func record(transcripts *transcript.Store, r *http.Request, req Request, resp Response, transport string) {
	if transcripts == nil {
		return
	}
	var ids []string
	if resp.Context != nil {
		ids = resp.Context.LastProductIDs
	}
	err := transcripts.Record(r.Context(), transcript.Exchange{
		Message:    req.Message,
		Reply:      resp.Reply,
		Source:     string(resp.Source),
		ProductIDs: ids,
		Transport:  transport,
	})
	if err != nil {
		log.Printf("chat: recording exchange: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
