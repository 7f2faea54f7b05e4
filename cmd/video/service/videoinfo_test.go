package service

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"playtube.com/cmd/model"
	"playtube.com/pkg/errno"
)

func stubVideoStore(t *testing.T, video *model.Video, fetchErr error) *[]bool {
	t.Helper()
	origFetch, origStore := fetchVideo, storePublished
	t.Cleanup(func() {
		fetchVideo, storePublished = origFetch, origStore
	})

	stored := &[]bool{}
	fetchVideo = func(ctx context.Context, videoId int64) (*model.Video, error) {
		if fetchErr != nil {
			return nil, fetchErr
		}
		copied := *video
		return &copied, nil
	}
	storePublished = func(ctx context.Context, videoId int64, published bool) error {
		*stored = append(*stored, published)
		return nil
	}
	return stored
}

// Toggling runs without any credential: the method takes only the video id,
// so a caller who owns nothing can still unpublish someone else's video.
func TestTogglePublishHasNoOwnershipGate(t *testing.T) {
	video := &model.Video{VideoId: 10, UserId: 42, IsPublished: true}
	stored := stubVideoStore(t, video, nil)

	toggled, err := NewVideoInfoService(context.Background()).TogglePublish(10)
	if err != nil {
		t.Fatalf("TogglePublish: %v", err)
	}
	if toggled.IsPublished {
		t.Error("published flag not flipped")
	}
	if len(*stored) != 1 || (*stored)[0] != false {
		t.Errorf("stored flags = %v, want [false]", *stored)
	}
	if toggled.UserId != 42 {
		t.Errorf("owner = %d, want 42 (record untouched beyond the flag)", toggled.UserId)
	}
}

func TestTogglePublishFlipsBothWays(t *testing.T) {
	video := &model.Video{VideoId: 10, UserId: 42, IsPublished: false}
	stored := stubVideoStore(t, video, nil)

	toggled, err := NewVideoInfoService(context.Background()).TogglePublish(10)
	if err != nil {
		t.Fatalf("TogglePublish: %v", err)
	}
	if !toggled.IsPublished {
		t.Error("unpublished video should come back published")
	}
	if len(*stored) != 1 || (*stored)[0] != true {
		t.Errorf("stored flags = %v, want [true]", *stored)
	}
}

func TestTogglePublishMissingVideo(t *testing.T) {
	stored := stubVideoStore(t, nil, gorm.ErrRecordNotFound)

	_, err := NewVideoInfoService(context.Background()).TogglePublish(10)
	got := errno.ConvertErr(err)
	if got.ErrMsg != errno.VideoNotFoundErr.ErrMsg {
		t.Errorf("missing video error = %+v, want %+v", got, errno.VideoNotFoundErr)
	}
	if len(*stored) != 0 {
		t.Errorf("store called %d times for a missing video", len(*stored))
	}
}
