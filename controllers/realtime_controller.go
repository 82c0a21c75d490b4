package controllers

import (
	"net/http"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var hub *services.RealtimeHub

func InitRealtime(h *services.RealtimeHub) { hub = h }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RealtimeWS upgrades the connection and keeps it registered until the
// client goes away. The hub pushes achievement and goal events to it.
func RealtimeWS(c *gin.Context) {
	if hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not enabled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &services.WSClient{UserID: currentUserID(c), Conn: conn}
	hub.Register(client)
	defer hub.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
