package model

type Comment struct {
	CommentId int64  `gorm:"primaryKey" json:"comment_id"`
	UserId    int64  `json:"user_id"`
	VideoId   int64  `json:"video_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CommentLike records one identity liking one comment. The like toggle
// keeps at most one row per (comment_id, user_id).
type CommentLike struct {
	CommentLikeId int64  `gorm:"primaryKey" json:"comment_like_id"`
	UserId        int64  `json:"user_id"`
	CommentId     int64  `json:"comment_id"`
	CreatedAt     string `json:"created_at"`
}

// CommentInfo is the read-time projection of a comment enriched with like
// annotations. Nothing here is persisted.
type CommentInfo struct {
	Comment
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}
