package service

import (
	"context"
	"mime/multipart"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/authz"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/oss"
)

type VideoUpdateService struct {
	ctx context.Context
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx}
}

type VideoUpdateRequest struct {
	VideoId     int64
	Title       string
	Description string
	Thumbnail   *multipart.FileHeader
	AccessToken string
}

// Update replaces the thumbnail and the title/description after the
// ownership gate. The old thumbnail is released best-effort.
func (service *VideoUpdateService) Update(req *VideoUpdateRequest) (*model.Video, error) {
	if req.Title == "" && req.Description == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}

	video, err := requireVideoOwner(service.ctx, req.VideoId, req.AccessToken)
	if err != nil {
		return nil, err
	}

	if req.Thumbnail == nil {
		return nil, errno.RequestErr.WithMessage("Thumbnail file is required")
	}

	if err := oss.DeleteImage(service.ctx, video.CoverUrl); err != nil {
		hlog.Warnf("Failed to delete old thumbnail for video %d: %v", video.VideoId, err)
	}
	coverUrl, err := oss.UploadImage(service.ctx, req.Thumbnail)
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}

	updates := updateColumns(req.Title, req.Description, coverUrl)
	if err := db.UpdateVideo(service.ctx, video.VideoId, updates); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	video.CoverUrl = coverUrl
	return video, nil
}

// updateColumns builds the column set for a partial update. An omitted field
// must not reach the store at all: gorm writes zero-value map entries, which
// would erase whichever field the caller left out.
func updateColumns(title, description, coverUrl string) map[string]interface{} {
	updates := map[string]interface{}{
		"cover_url": coverUrl,
	}
	if title != "" {
		updates["title"] = title
	}
	if description != "" {
		updates["description"] = description
	}
	return updates
}

// requireVideoOwner re-verifies the bearer credential against the video's
// owner. Missing videos surface before the ownership decision; an ownership
// mismatch carries the video paths' historical failure code.
func requireVideoOwner(ctx context.Context, videoId int64, token string) (*model.Video, error) {
	var video *model.Video
	_, err := authz.RequireOwner(ctx, token, func(ctx context.Context) (int64, error) {
		fetched, err := db.GetVideoInfo(ctx, videoId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errno.VideoNotFoundErr
			}
			return 0, errno.MysqlErr.WithMessage(err.Error())
		}
		video = fetched
		return fetched.UserId, nil
	}, errno.VideoPermissionErr)
	if err != nil {
		return nil, err
	}
	return video, nil
}
