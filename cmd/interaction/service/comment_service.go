package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/interaction/dal/db"
	"playtube.com/cmd/model"
	videodb "playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/authz"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/pagination"
	"playtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

type ListCommentRequest struct {
	VideoId  int64
	ViewerId int64
	Page     int64
	Limit    int64
}

type ListCommentResponse struct {
	Comments      []*model.CommentInfo `json:"comments"`
	Page          int64                `json:"page"`
	TotalPages    int64                `json:"total_pages"`
	TotalComments int64                `json:"total_comments"`
}

// ListComment returns one page of comments annotated with like data for the
// viewer. Like rows are fetched in a single batched query keyed by the
// page's comment ids, never per comment.
func (service *CommentService) ListComment(req *ListCommentRequest) (*ListCommentResponse, error) {
	if req.Page <= 0 {
		req.Page = constants.DefaultPage
	}
	if req.Limit <= 0 {
		req.Limit = constants.DefaultLimit
	}

	total, err := db.GetCommentCount(service.ctx, req.VideoId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	comments, err := db.ListComments(service.ctx, req.VideoId, pagination.Offset(req.Page, req.Limit), req.Limit)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	commentIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIds = append(commentIds, comment.CommentId)
	}

	likes, err := db.GetLikesByCommentIds(service.ctx, commentIds)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	return &ListCommentResponse{
		Comments:      annotateComments(comments, likes, req.ViewerId),
		Page:          req.Page,
		TotalPages:    pagination.TotalPages(total, req.Limit),
		TotalComments: total,
	}, nil
}

// annotateComments merges a page of comments with its like rows: one pass
// over the likes to build count and viewer-membership maps, one pass over
// the comments to emit the enriched records. Input ordering is preserved.
func annotateComments(comments []*model.Comment, likes []*model.CommentLike, viewerId int64) []*model.CommentInfo {
	likeCountMap := make(map[int64]int64, len(comments))
	isLikedMap := make(map[int64]bool, len(comments))

	for _, like := range likes {
		likeCountMap[like.CommentId]++
		if like.UserId == viewerId {
			isLikedMap[like.CommentId] = true
		}
	}

	enriched := make([]*model.CommentInfo, 0, len(comments))
	for _, comment := range comments {
		enriched = append(enriched, &model.CommentInfo{
			Comment:   *comment,
			IsLiked:   isLikedMap[comment.CommentId],
			LikeCount: likeCountMap[comment.CommentId],
		})
	}
	return enriched
}

type CreateCommentRequest struct {
	VideoId int64
	UserId  int64
	Content string
}

func (service *CommentService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("All fields are required")
	}
	return nil
}

// CreateComment adds a comment to an existing video, owned by the caller.
func (service *CommentService) CreateComment(req *CreateCommentRequest) (*model.Comment, error) {
	if err := service.validateContent(req.Content); err != nil {
		return nil, err
	}

	if _, err := videodb.GetVideoInfo(service.ctx, req.VideoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateCommentID(),
		UserId:    req.UserId,
		VideoId:   req.VideoId,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return comment, nil
}

type UpdateCommentRequest struct {
	CommentId   int64
	Content     string
	AccessToken string
}

// UpdateComment replaces a comment's content after the ownership gate.
func (service *CommentService) UpdateComment(req *UpdateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}

	comment, err := service.requireCommentOwner(req.CommentId, req.AccessToken)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(constants.DataFormate)
	if err := db.UpdateCommentContent(service.ctx, comment.CommentId, req.Content, now); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	comment.Content = req.Content
	comment.UpdatedAt = now
	return comment, nil
}

type DeleteCommentRequest struct {
	CommentId   int64
	AccessToken string
}

// DeleteComment removes a comment after the ownership gate and returns the
// deleted record.
func (service *CommentService) DeleteComment(req *DeleteCommentRequest) (*model.Comment, error) {
	comment, err := service.requireCommentOwner(req.CommentId, req.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := db.DeleteComment(service.ctx, comment.CommentId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.CommentNotFoundErr
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return comment, nil
}

// requireCommentOwner re-verifies the bearer credential against the
// comment's owner. Missing comments surface before the ownership decision.
func (service *CommentService) requireCommentOwner(commentId int64, token string) (*model.Comment, error) {
	var comment *model.Comment
	_, err := authz.RequireOwner(service.ctx, token, func(ctx context.Context) (int64, error) {
		fetched, err := db.GetCommentInfo(ctx, commentId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errno.CommentNotFoundErr
			}
			return 0, errno.MysqlErr.WithMessage(err.Error())
		}
		comment = fetched
		return fetched.UserId, nil
	}, errno.CommentPermissionErr)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
