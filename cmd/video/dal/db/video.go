package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

// VideoFilter narrows a listing query. Zero values mean "no constraint".
type VideoFilter struct {
	TitleKeyword string
	UserId       int64
}

func applyFilter(tx *gorm.DB, filter *VideoFilter) *gorm.DB {
	if filter == nil {
		return tx
	}
	if filter.TitleKeyword != "" {
		tx = tx.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.TitleKeyword+"%")
	}
	if filter.UserId != 0 {
		tx = tx.Where("user_id = ?", filter.UserId)
	}
	return tx
}

func CountVideos(ctx context.Context, filter *VideoFilter) (int64, error) {
	var count int64
	if err := applyFilter(DB.WithContext(ctx).Model(&model.Video{}), filter).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "Failed to count videos")
	}
	return count, nil
}

func ListVideos(ctx context.Context, filter *VideoFilter, orderBy string, skip, limit int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := applyFilter(DB.WithContext(ctx).Model(&model.Video{}), filter).
		Order(orderBy).
		Offset(int(skip)).Limit(int(limit)).
		Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list videos")
	}
	return videos, nil
}

// GetVideoInfo returns gorm.ErrRecordNotFound when the video is absent.
func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "Failed to insert video")
	}
	return nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.WithMessage(err, "Failed to update video")
	}
	return nil
}

func UpdateVideoPublished(ctx context.Context, videoId int64, published bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", published).Error; err != nil {
		return errors.WithMessage(err, "Failed to update publish status")
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	result := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "Failed to delete video")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
