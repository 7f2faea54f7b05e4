package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/video/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/pagination"
)

func GetAllVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	resp, err := service.NewVideoListService(ctx).VideoList(&service.VideoListRequest{
		Query:    param.Query,
		UserId:   userFilterId(param.UserId),
		SortBy:   param.SortBy,
		SortType: param.SortType,
		Page:     pagination.Page(c.Query("page")),
		Limit:    pagination.Limit(c.Query("limit")),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("All videos are fetched successfully"), resp)
}
