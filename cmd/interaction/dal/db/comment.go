package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentInfo returns gorm.ErrRecordNotFound when the comment is absent.
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentCount counts all comments, or only a video's when videoId is set.
func GetCommentCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	tx := DB.WithContext(ctx).Model(&model.Comment{})
	if videoId != 0 {
		tx = tx.Where("video_id = ?", videoId)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "Failed to count comments")
	}
	return count, nil
}

// ListComments returns one page, ordered by comment id so a page's order is
// stable across requests.
func ListComments(ctx context.Context, videoId, skip, limit int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	tx := DB.WithContext(ctx).Model(&model.Comment{})
	if videoId != 0 {
		tx = tx.Where("video_id = ?", videoId)
	}
	if err := tx.Order("comment_id").Offset(int(skip)).Limit(int(limit)).Find(&comments).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list comments")
	}
	return comments, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error; err != nil {
		return errors.WithMessage(err, "Failed to update comment")
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	result := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "Failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
