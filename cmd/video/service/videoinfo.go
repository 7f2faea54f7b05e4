package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/errno"
)

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

// Store seams, swapped out in tests.
var (
	fetchVideo     = db.GetVideoInfo
	storePublished = db.UpdateVideoPublished
)

func (service *VideoInfoService) VideoInfo(videoId int64) (*model.Video, error) {
	video, err := fetchVideo(service.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}

// TogglePublish flips the published flag. Unlike the other video mutations
// it takes no credential and runs no ownership gate: any authenticated
// caller can flip the flag on any video.
func (service *VideoInfoService) TogglePublish(videoId int64) (*model.Video, error) {
	video, err := service.VideoInfo(videoId)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := storePublished(service.ctx, video.VideoId, video.IsPublished); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}
