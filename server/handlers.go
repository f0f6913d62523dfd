package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"tangled.org/ashwam.app/langid/detect"
	"tangled.org/ashwam.app/langid/internal/jsonl"
)

// maxDetectBody caps single-record request bodies
const maxDetectBody = 1 << 20

// detectRequest is the POST /detect body
type detectRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (s *Server) handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := map[string]interface{}{
			"service": "langid",
			"version": s.config.Version,
			"endpoints": map[string]string{
				"status":       getBaseURL(r) + "/status",
				"detect":       getBaseURL(r) + "/detect",
				"detect_batch": getBaseURL(r) + "/detect/batch",
			},
		}

		if s.config.EnableWebSocket {
			info["websocket"] = getWSURL(r) + "/ws"
		}

		sendJSON(w, 200, info)
	}
}

func (s *Server) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, 200, map[string]interface{}{
			"status":         "ok",
			"version":        s.config.Version,
			"uptime_seconds": int(time.Since(s.startTime).Seconds()),
			"lexicons": map[string]int{
				"hi_lexicon":   detect.HindiLexiconSize(),
				"en_stopwords": detect.EnglishStopwordsSize(),
			},
		})
	}
}

func (s *Server) handleDetect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDetectBody))
		if err != nil {
			sendJSON(w, 400, map[string]string{"error": "failed to read body"})
			return
		}

		var req detectRequest
		if err := json.Unmarshal(body, &req); err != nil {
			sendJSON(w, 400, map[string]string{"error": fmt.Sprintf("invalid JSON: %v", err)})
			return
		}

		if req.ID == "" {
			req.ID = "adhoc"
		}

		sendJSON(w, 200, s.detector.Detect(req.ID, req.Text))
	}
}

// handleDetectBatch streams detection results for a JSONL request body.
// Blank and malformed lines are skipped, mirroring file processing.
func (s *Server) handleDetectBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")

		reader := jsonl.NewReader(r.Body)
		defer reader.Release()
		writer := jsonl.NewWriter(w)

		for {
			rec, err := reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				// Body truncated mid-stream; nothing sane to send.
				return
			}

			if err := writer.Write(s.detector.Detect(rec.ID, rec.Text)); err != nil {
				return
			}
		}

		writer.Flush()
	}
}
