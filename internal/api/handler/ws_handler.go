package handler

import (
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/security"
	"Hirebase/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler 通知实时推送通道
type WsHandler struct{}

func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// 鉴权
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.ErrTokenInvalid)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.ErrTokenInvalid)
		return
	}
	memberID := claims.MemberID

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 订阅本人的通知频道
	pubsub := redis.Subscribe(context.Background(), consts.NotificationChKey+memberID)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("会员 WS 连接已建立", "memberID", memberID)

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：监听 Redis 并推送至客户端
	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
			if err != nil {
				log.Error("WS 推送失败", "memberID", memberID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("会员 WS 连接已断开", "memberID", memberID)
			return
		}
	}
}
