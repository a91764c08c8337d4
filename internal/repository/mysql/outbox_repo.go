package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Founder_Circle/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{DB: db}
}

// Insert 写入一条事件，payload 任意可序列化结构
func (r *OutboxRepository) Insert(ctx context.Context, eventType string, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["event_time"] = time.Now().UTC().Format(time.RFC3339Nano)
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	ob := &model.EventOutbox{
		EventType: eventType,
		Payload:   string(raw),
		Status:    0,
	}
	return r.DB.WithContext(ctx).Create(ob).Error
}

func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.EventOutbox, error) {
	var list []model.EventOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error
	return list, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EventOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkFailed 记失败并累加重试次数，等待下一轮投递
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EventOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// ResetFailed 把失败事件重置回 pending，重投用
func (r *OutboxRepository) ResetFailed(ctx context.Context, maxRetry int) error {
	return r.DB.WithContext(ctx).Model(&model.EventOutbox{}).
		Where("status = 2 AND retry < ?", maxRetry).
		Update("status", 0).Error
}
