package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/oss"
)

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

type VideoDeleteRequest struct {
	VideoId     int64
	AccessToken string
}

// Delete removes the video record after the ownership gate. Asset cleanup
// is best-effort: a failed media deletion is logged and never blocks the
// record deletion. The steps are not atomic; a crash in between can orphan
// an asset.
func (service *VideoDeleteService) Delete(req *VideoDeleteRequest) (*model.Video, error) {
	video, err := requireVideoOwner(service.ctx, req.VideoId, req.AccessToken)
	if err != nil {
		return nil, err
	}

	if err := oss.DeleteVideoAsset(service.ctx, video.VideoUrl); err != nil {
		hlog.Warnf("Failed to delete video asset for video %d: %v", video.VideoId, err)
	}
	if err := oss.DeleteImage(service.ctx, video.CoverUrl); err != nil {
		hlog.Warnf("Failed to delete thumbnail for video %d: %v", video.VideoId, err)
	}

	if err := db.DeleteVideo(service.ctx, video.VideoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}
