package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebSocket runs a detection session: the client sends one JSON
// record ({"id": ..., "text": ...}) per text message and receives the
// detection result per message. Records with no id get "msg_<n>".
func (s *Server) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WebSocket upgrade failed: %v\n", err)
			return
		}
		defer conn.Close()

		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})

		msgNum := 0
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return
				}
				if !websocket.IsUnexpectedCloseError(err) {
					fmt.Fprintf(os.Stderr, "WebSocket read error: %v\n", err)
				}
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			msgNum++

			var req detectRequest
			if err := json.Unmarshal(data, &req); err != nil {
				if werr := sendWSError(conn, fmt.Sprintf("invalid JSON: %v", err)); werr != nil {
					return
				}
				continue
			}

			if req.ID == "" {
				req.ID = fmt.Sprintf("msg_%d", msgNum)
			}

			res := s.detector.Detect(req.ID, req.Text)

			out, err := json.Marshal(res)
			if err != nil {
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					fmt.Fprintf(os.Stderr, "WebSocket write error: %v\n", err)
				}
				return
			}
		}
	}
}

func sendWSError(conn *websocket.Conn, msg string) error {
	data, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
