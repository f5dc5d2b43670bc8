package controllers

import (
	"log"
	"net/http"

	"streetlens-admin/live"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the dashboard runs on a different origin than the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// IssueStream upgrades the request to a WebSocket and attaches it to the
// snapshot hub. Auth runs in middleware before the upgrade.
func IssueStream(hub *live.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("live: upgrade failed: %v", err)
			return
		}
		hub.RegisterClient(conn)
	}
}
