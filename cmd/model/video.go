package model

type Video struct {
	VideoId     int64  `gorm:"primaryKey" json:"video_id"`
	UserId      int64  `json:"user_id"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VisitCount  int64  `json:"visit_count"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
