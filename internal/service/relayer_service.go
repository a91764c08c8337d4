package service

import (
	"context"
	"strconv"
	"time"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.EventOutbox) error

// OutboxRelayer 周期性把 outbox 里落库的事件投递出去
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, interval time.Duration, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(db),
		batchSize: 200,
		interval:  interval,
		maxRetry:  5,
		sender:    sender,
	}
}

// KafkaSender 事件写入 kafka，key 用事件类型
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.EventOutbox) error {
		return producer.Send(ctx, ob.EventType, []byte(ob.Payload))
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// 从 outbox 取一批 pending 逐条投递，失败的标记后下一轮重试
func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		pkg.Logger.Warn("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			pkg.Logger.Warn("outbox send failed",
				zap.String("id", strconv.FormatUint(ob.ID, 10)),
				zap.Error(err))
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		if err = r.repo.MarkSent(ctx, ob.ID); err != nil {
			pkg.Logger.Warn("outbox ack failed", zap.Error(err))
		}
	}
	// 未超过重试上限的失败事件捞回来继续投
	if err = r.repo.ResetFailed(ctx, r.maxRetry); err != nil {
		pkg.Logger.Warn("outbox reset failed", zap.Error(err))
	}
}
