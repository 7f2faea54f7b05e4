package service

import (
	"testing"

	"playtube.com/cmd/model"
)

func makeComments(ids ...int64) []*model.Comment {
	comments := make([]*model.Comment, 0, len(ids))
	for _, id := range ids {
		comments = append(comments, &model.Comment{CommentId: id, VideoId: 1, Content: "c"})
	}
	return comments
}

func TestAnnotateCommentsCountsAndMembership(t *testing.T) {
	comments := makeComments(10, 11, 12)
	likes := []*model.CommentLike{
		{CommentId: 10, UserId: 1},
		{CommentId: 10, UserId: 2},
		{CommentId: 10, UserId: 3},
		{CommentId: 11, UserId: 2},
	}

	enriched := annotateComments(comments, likes, 2)
	if len(enriched) != 3 {
		t.Fatalf("len = %d, want 3", len(enriched))
	}

	if enriched[0].LikeCount != 3 || !enriched[0].IsLiked {
		t.Errorf("comment 10: count=%d liked=%v, want 3/true", enriched[0].LikeCount, enriched[0].IsLiked)
	}
	if enriched[1].LikeCount != 1 || !enriched[1].IsLiked {
		t.Errorf("comment 11: count=%d liked=%v, want 1/true", enriched[1].LikeCount, enriched[1].IsLiked)
	}
	if enriched[2].LikeCount != 0 || enriched[2].IsLiked {
		t.Errorf("comment 12: count=%d liked=%v, want 0/false", enriched[2].LikeCount, enriched[2].IsLiked)
	}
}

func TestAnnotateCommentsViewerWithoutLikes(t *testing.T) {
	comments := makeComments(10, 11)
	likes := []*model.CommentLike{
		{CommentId: 10, UserId: 1},
		{CommentId: 11, UserId: 1},
	}

	// Viewer 99 never liked anything, counts still reflect everyone's likes.
	for i, info := range annotateComments(comments, likes, 99) {
		if info.IsLiked {
			t.Errorf("comment %d marked liked for a non-liking viewer", comments[i].CommentId)
		}
		if info.LikeCount != 1 {
			t.Errorf("comment %d count = %d, want 1", comments[i].CommentId, info.LikeCount)
		}
	}
}

func TestAnnotateCommentsPreservesOrder(t *testing.T) {
	comments := makeComments(30, 10, 20)
	enriched := annotateComments(comments, nil, 0)

	for i, want := range []int64{30, 10, 20} {
		if enriched[i].CommentId != want {
			t.Errorf("position %d = %d, want %d", i, enriched[i].CommentId, want)
		}
	}
}

func TestAnnotateCommentsEmptyPage(t *testing.T) {
	enriched := annotateComments(nil, nil, 1)
	if len(enriched) != 0 {
		t.Errorf("empty page should annotate to an empty slice, got %d", len(enriched))
	}
}

func TestValidateContent(t *testing.T) {
	service := &CommentService{}

	if err := service.validateContent("hello"); err != nil {
		t.Errorf("valid content rejected: %v", err)
	}
	if err := service.validateContent("   "); err == nil {
		t.Error("whitespace-only content accepted")
	}
	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'x'
	}
	if err := service.validateContent(string(long)); err != nil {
		t.Errorf("long content rejected: %v", err)
	}
}
