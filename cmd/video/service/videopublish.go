package service

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/oss"
	"playtube.com/pkg/utils"
)

type VideoPublishService struct {
	ctx context.Context
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx}
}

type VideoPublishRequest struct {
	UserId      int64
	Title       string
	Description string
	VideoFile   *multipart.FileHeader
	Thumbnail   *multipart.FileHeader
}

// Publish uploads both assets to object storage and creates the video
// record owned by the caller, published immediately.
func (service *VideoPublishService) Publish(req *VideoPublishRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}
	if req.VideoFile == nil {
		return nil, errno.RequestErr.WithMessage("Video file is required")
	}
	if req.Thumbnail == nil {
		return nil, errno.RequestErr.WithMessage("Thumbnail file is required")
	}

	videoUrl, err := oss.UploadVideo(service.ctx, req.VideoFile)
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}
	coverUrl, err := oss.UploadImage(service.ctx, req.Thumbnail)
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateVideoID(),
		UserId:      req.UserId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       req.Title,
		Description: req.Description,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(service.ctx, video); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}
