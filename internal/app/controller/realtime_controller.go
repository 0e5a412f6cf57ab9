package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"github.com/navjivan/navjivan-backend/internal/middleware"
	"github.com/navjivan/navjivan-backend/internal/websocket"
	"github.com/navjivan/navjivan-backend/pkg/logger"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer in front of this handler
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RealtimeController upgrades admin console connections onto the
// live-update hub.
type RealtimeController struct {
	hub *websocket.Hub
}

func NewRealtimeController(hub *websocket.Hub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

func (ctrl *RealtimeController) ServeWS(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return
	}

	client := websocket.NewClient(ctrl.hub, conn, userID)
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
