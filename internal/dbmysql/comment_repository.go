package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vanshaj8/Promptly/internal/common"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ExistsByExternalID(ctx context.Context, commentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Comment{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check comment: %w", err)
	}
	return count > 0, nil
}

// Create inserts the comment. A concurrent insert of the same external id
// surfaces as common.ErrDuplicate.
func (r *CommentRepository) Create(ctx context.Context, comment *Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		if IsDuplicateKey(err) {
			return fmt.Errorf("comment %s: %w", comment.CommentID, common.ErrDuplicate)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByIDAndBrand is tenant scoped: a comment of another brand is reported as not found.
func (r *CommentRepository) FindByIDAndBrand(ctx context.Context, id, brandID uint) (*Comment, error) {
	var comment Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND brand_id = ?", id, brandID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateStatus(ctx context.Context, id uint, status common.CommentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&Comment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// ListByBrand pages through a brand's comments, newest first. An empty status lists all.
func (r *CommentRepository) ListByBrand(
	ctx context.Context,
	brandID uint,
	status common.CommentStatus,
	limit, offset int,
) ([]*Comment, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&Comment{}).Where("brand_id = ?", brandID)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []*Comment
	err := scoped().
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}
