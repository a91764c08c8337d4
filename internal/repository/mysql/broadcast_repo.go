package mysql

import (
	"context"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BroadcastRepository struct {
	DB *gorm.DB
}

func NewBroadcastRepository(db *gorm.DB) *BroadcastRepository {
	return &BroadcastRepository{DB: db}
}

func (r *BroadcastRepository) Create(ctx context.Context, b *model.Broadcast) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *BroadcastRepository) ListBySender(ctx context.Context, senderID string) ([]model.Broadcast, error) {
	var list []model.Broadcast
	err := r.DB.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
