package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/interaction/dal/db"
	"playtube.com/cmd/model"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

type ToggleCommentLikeRequest struct {
	CommentId int64
	UserId    int64
}

// ToggleCommentLike flips the caller's like on a comment. The pre-check
// keeps at most one like row per (comment, identity) pair, which the
// listing annotation relies on.
func (service *LikeService) ToggleCommentLike(req *ToggleCommentLikeRequest) (liked bool, err error) {
	if _, err := db.GetCommentInfo(service.ctx, req.CommentId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.CommentNotFoundErr
		}
		return false, errno.MysqlErr.WithMessage(err.Error())
	}

	_, exists, err := db.GetCommentLike(service.ctx, req.CommentId, req.UserId)
	if err != nil {
		return false, errno.MysqlErr.WithMessage(err.Error())
	}

	if exists {
		if err := db.DeleteCommentLike(service.ctx, req.CommentId, req.UserId); err != nil {
			return false, errno.MysqlErr.WithMessage(err.Error())
		}
		return false, nil
	}

	like := &model.CommentLike{
		CommentLikeId: utils.GenerateLikeID(),
		UserId:        req.UserId,
		CommentId:     req.CommentId,
		CreatedAt:     time.Now().Format(constants.DataFormate),
	}
	if err := db.AddCommentLike(service.ctx, like); err != nil {
		return false, errno.MysqlErr.WithMessage(err.Error())
	}
	return true, nil
}
