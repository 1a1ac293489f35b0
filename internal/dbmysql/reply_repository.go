package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vanshaj8/Promptly/internal/common"
)

type ReplyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{db: db}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		if IsDuplicateKey(err) {
			return fmt.Errorf("reply %s: %w", reply.ReplyID, common.ErrDuplicate)
		}
		return fmt.Errorf("failed to create reply: %w", err)
	}
	return nil
}

func (r *ReplyRepository) ListByComment(ctx context.Context, commentID uint) ([]*Reply, error) {
	var replies []*Reply
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("sent_at DESC").
		Find(&replies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return replies, nil
}
