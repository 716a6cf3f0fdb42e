package controllers

import (
	"SiriaExpress/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type RealtimeController struct {
	Hub *services.Hub
}

func NewRealtimeController() *RealtimeController {
	return &RealtimeController{
		Hub: services.GetHub(),
	}
}

// MenuFeed upgrades the connection and keeps it registered on the hub
// until the client goes away. The read loop only exists to detect the
// disconnect; clients never send anything meaningful.
func (r *RealtimeController) MenuFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	r.Hub.Register(conn)
	defer r.Hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
