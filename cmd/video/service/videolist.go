package service

import (
	"context"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/pagination"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

type VideoListRequest struct {
	Query    string
	UserId   int64
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

type VideoListResponse struct {
	Videos      []*model.Video `json:"videos"`
	Page        int64          `json:"page"`
	TotalPages  int64          `json:"total_pages"`
	TotalVideos int64          `json:"total_videos"`
}

// sortColumns whitelists caller-selectable sort fields; the sort expression
// reaches the store as raw SQL, so unknown fields fall back to creation time.
var sortColumns = map[string]string{
	"created_at":  "created_at",
	"title":       "title",
	"visit_count": "visit_count",
}

func OrderBy(sortBy, sortType string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if sortType == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// VideoList returns one filtered, sorted page plus counts.
func (service *VideoListService) VideoList(req *VideoListRequest) (*VideoListResponse, error) {
	if req.Page <= 0 {
		req.Page = constants.DefaultPage
	}
	if req.Limit <= 0 {
		req.Limit = constants.DefaultLimit
	}

	filter := &db.VideoFilter{
		TitleKeyword: req.Query,
		UserId:       req.UserId,
	}

	total, err := db.CountVideos(service.ctx, filter)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	videos, err := db.ListVideos(service.ctx, filter, OrderBy(req.SortBy, req.SortType),
		pagination.Offset(req.Page, req.Limit), req.Limit)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	return &VideoListResponse{
		Videos:      videos,
		Page:        req.Page,
		TotalPages:  pagination.TotalPages(total, req.Limit),
		TotalVideos: total,
	}, nil
}
