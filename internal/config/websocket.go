package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// the gateway terminates origin policy; same-origin checks here
			// would reject the dev frontend
			return true
		},
	}
	return &WebSocket{Upgrader: upgrader}, nil
}
