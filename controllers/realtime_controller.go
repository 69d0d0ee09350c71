package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"nutritrack/services"
)

const defaultPingInterval = 25 * time.Second

type RealtimeController struct {
	RT           *services.RealtimeHub
	pingInterval time.Duration
	logger       *zap.Logger
}

func NewRealtimeController(rt *services.RealtimeHub, logger *zap.Logger) *RealtimeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RealtimeController{RT: rt, pingInterval: defaultPingInterval, logger: logger}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Listen upgrades to a websocket and streams the user's change events until
// the client goes away.
func (rc *RealtimeController) Listen(c *gin.Context) {
	uid := userID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.logger.Debug("websocket upgrade failed", zap.Uint("user_id", uid), zap.Error(err))
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(rc.pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Write(websocket.PingMessage, nil); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close or error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
