package db

import (
	"context"

	"github.com/pkg/errors"

	"playtube.com/cmd/model"
)

// GetLikesByCommentIds fetches every like referencing the given comments in
// a single query; the caller joins them in memory.
func GetLikesByCommentIds(ctx context.Context, commentIds []int64) ([]*model.CommentLike, error) {
	likes := make([]*model.CommentLike, 0)
	if len(commentIds) == 0 {
		return likes, nil
	}
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id IN (?)", commentIds).Find(&likes).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to fetch comment likes")
	}
	return likes, nil
}

// GetCommentLike reports whether userId already likes the comment.
func GetCommentLike(ctx context.Context, commentId, userId int64) (*model.CommentLike, bool, error) {
	likes := make([]*model.CommentLike, 0)
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentId, userId).Limit(1).Find(&likes).Error; err != nil {
		return nil, false, errors.WithMessage(err, "Failed to query comment like")
	}
	if len(likes) == 0 {
		return nil, false, nil
	}
	return likes[0], true, nil
}

func AddCommentLike(ctx context.Context, like *model.CommentLike) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		return errors.WithMessage(err, "Failed to add comment like")
	}
	return nil
}

func DeleteCommentLike(ctx context.Context, commentId, userId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ? AND user_id = ?", commentId, userId).
		Delete(&model.CommentLike{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete comment like")
	}
	return nil
}
