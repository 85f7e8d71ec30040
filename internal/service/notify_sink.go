package service

import (
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/redis"
	"context"

	"github.com/goccy/go-json"
)

// RedisSink 把通知发布到收件人专属频道，在线端由 WS 网关转发
type RedisSink struct{}

func NewRedisSink() NotificationSink {
	return &RedisSink{}
}

func (s *RedisSink) Push(ctx context.Context, notification *model.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return redis.Publish(ctx, consts.NotificationChKey+notification.ReceiverID.Hex(), payload)
}
